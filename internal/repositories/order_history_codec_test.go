package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharma-order-system/internal/entities"
	"pharma-order-system/pkg/constants"
)

func TestDecodeCollection_NormalizesMissingAndMalformed(t *testing.T) {
	logger := zap.NewNop()

	for name, raw := range map[string][]byte{
		"nil":       nil,
		"sql null":  []byte("null"),
		"malformed": []byte(`{"not":"an array"`),
		"object":    []byte(`{"id":"comment-1"}`),
	} {
		t.Run(name, func(t *testing.T) {
			got := decodeCollection[entities.Comment](logger, "ORD-1", "comments", raw)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeCollection_KeepsOrder(t *testing.T) {
	raw := []byte(`[
		{"id":"timeline-1","event":"Order Created","status":"PO_Received_from_Client"},
		{"id":"timeline-2","event":"Status Updated","status":"Drafting_PO_for_Supplier"}
	]`)

	got := decodeCollection[entities.TimelineEvent](zap.NewNop(), "ORD-1", "timeline", raw)
	require.Len(t, got, 2)
	assert.Equal(t, "timeline-1", got[0].ID)
	assert.Equal(t, constants.StatusDraftingPOForSupplier, got[1].Status)
}

func TestDecodeDocuments(t *testing.T) {
	logger := zap.NewNop()

	docs := decodeDocuments(logger, "ORD-1", []byte(`{"customerPO":{"id":"doc_1","filename":"po.pdf","fileSize":12}}`))
	require.Contains(t, docs, constants.DocCustomerPO)
	assert.Equal(t, "po.pdf", docs[constants.DocCustomerPO].Filename)

	assert.Equal(t, entities.Documents{}, decodeDocuments(logger, "ORD-1", []byte("[1,2]")))
	assert.Equal(t, entities.Documents{}, decodeDocuments(logger, "ORD-1", nil))
}
