package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDTOs_AcceptDateOnlyETA(t *testing.T) {
	var update UpdateOrderDTO
	require.NoError(t, json.Unmarshal([]byte(`{"eta":"2025-04-13","notes":"rescheduled"}`), &update))
	require.NotNil(t, update.ETA)
	assert.Equal(t, "2025-04-13", *update.ETA)
	assert.Nil(t, update.PONumber)

	var create CreateOrderDTO
	require.NoError(t, json.Unmarshal([]byte(`{"orderId":"ORD-1","eta":"2025-04-13"}`), &create))
	assert.Equal(t, "2025-04-13", create.ETA)
}

func TestUpdateOrderDTO_AbsentETAStaysNil(t *testing.T) {
	var update UpdateOrderDTO
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"x"}`), &update))
	assert.Nil(t, update.ETA)
}
