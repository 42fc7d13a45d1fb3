package repositories

import (
	"encoding/json"

	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
)

// decodeCollection reads a JSONB history array. NULL or malformed content is
// read as an empty collection so one bad row never fails a whole listing.
func decodeCollection[T any](logger *zap.Logger, orderID, field string, data []byte) []T {
	out := []T{}
	if len(data) == 0 || string(data) == "null" {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("malformed order history, reading as empty",
			zap.String("orderId", orderID),
			zap.String("field", field),
			zap.Error(err))
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func decodeDocuments(logger *zap.Logger, orderID string, data []byte) entities.Documents {
	docs := entities.Documents{}
	if len(data) == 0 || string(data) == "null" {
		return docs
	}
	if err := json.Unmarshal(data, &docs); err != nil {
		logger.Warn("malformed order documents, reading as empty",
			zap.String("orderId", orderID),
			zap.Error(err))
		return entities.Documents{}
	}
	if docs == nil {
		docs = entities.Documents{}
	}
	return docs
}
