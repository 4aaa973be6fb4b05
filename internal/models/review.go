// internal/models/review.go
package models

import (
	"time"

	"github.com/decibell/store-backend/internal/storage"
)

type Review struct {
	ID         int       `json:"id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	MediaURL   string    `json:"media_url"`
	DatePosted time.Time `json:"date_posted"`
	UserID     int       `json:"user_id"`
	ProductID  int       `json:"product_id"`
}

func (r *Review) EncodeRow() storage.Row {
	return storage.Row{
		"id":          formatInt(r.ID),
		"rating":      formatInt(r.Rating),
		"comment":     r.Comment,
		"media_url":   r.MediaURL,
		"date_posted": encodeTime(r.DatePosted),
		"user_id":     formatInt(r.UserID),
		"product_id":  formatInt(r.ProductID),
	}
}

func DecodeReview(row storage.Row) (*Review, error) {
	id, err := decodeID("reviews", row)
	if err != nil {
		return nil, err
	}

	return &Review{
		ID:         id,
		Rating:     fallbackInt(row["rating"], 0),
		Comment:    row["comment"],
		MediaURL:   row["media_url"],
		DatePosted: fallbackTime(row["date_posted"]),
		UserID:     fallbackInt(row["user_id"], 0),
		ProductID:  fallbackInt(row["product_id"], 0),
	}, nil
}
