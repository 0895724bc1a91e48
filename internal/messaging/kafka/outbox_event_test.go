package kafka_test

import (
	"encoding/json"
	"testing"

	"github.com/connectwithhassan/all-in-one/internal/events"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"

	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	payload := events.PayrollGeneratedEvent{EventType: events.EventTypePayrollGenerated, PayrollID: "p-1", Month: "2024-03"}

	event, err := kafka.NewOutboxEvent("req-1", "payroll", "p-1", events.EventTypePayrollGenerated, events.PayrollGeneratedTopic, payload)

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Equal(t, events.PayrollGeneratedTopic, event.Topic)

	var decoded events.PayrollGeneratedEvent
	assert.NoError(t, json.Unmarshal(event.Payload, &decoded))
	assert.Equal(t, "2024-03", decoded.Month)
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{}))
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: "bogus"}))
	assert.NoError(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusSent}))
}
