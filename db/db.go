// Package db looks up curated title/artist overrides for imported songs.
// OCR rarely reads the title block cleanly, so a small metadata table can
// supply the real values keyed by the sheet's base name.
package db

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "songplayer-metadata"

type SongMetadata struct {
	Title  string
	Artist string
}

// Enabled reports whether a metadata endpoint is configured. When it isn't,
// the importer keeps whatever the sheets declared.
func Enabled() bool {
	return os.Getenv("METADATA_DB_ENDPOINT") != ""
}

// GetSongMetadatas fetches overrides for the given sheet base names.
// Missing names simply don't appear in the result.
func GetSongMetadatas(baseNames []string) (map[string]SongMetadata, error) {
	res := make(map[string]SongMetadata)
	if len(baseNames) == 0 {
		return res, nil
	}
	if len(baseNames) > 100 {
		return nil, fmt.Errorf("cannot look up %v songs in one batch", len(baseNames))
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range baseNames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		})
	}

	endpoint := os.Getenv("METADATA_DB_ENDPOINT")
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[tableName] {
		var m SongMetadata
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			m.Artist = *v["Artist"].S
		}
		if v["PK"] != nil && v["PK"].S != nil {
			res[*v["PK"].S] = m
		}
	}

	return res, nil
}
