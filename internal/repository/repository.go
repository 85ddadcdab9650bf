package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// updateFields flattens a document into the $set payload for a full-document
// replace: every stored field is overwritten except the id and creation time,
// and updatedAt is refreshed.
func updateFields(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	fields["updatedAt"] = time.Now().UTC()
	return fields, nil
}

// pageOpts converts 1-based page/limit into skip/limit values.
func pageOpts(page, limit int) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return int64((page - 1) * limit), int64(limit)
}
