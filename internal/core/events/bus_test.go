package events_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/tracko/internal/core/events"
)

func TestEventBus(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Event Bus Suite")
}

var _ = Describe("EventBus", func() {
	var bus *events.EventBus

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(logger)
	})

	It("delivers events to subscribers asynchronously", func() {
		received := make(chan events.Event, 1)
		bus.Subscribe(events.EventTypeTaskFinalSubmit, func(ctx context.Context, event events.Event) error {
			received <- event
			return nil
		})

		event := events.NewTaskFinalSubmitEvent(10, 3, nil, nil)
		Expect(bus.Publish(context.Background(), event)).To(Succeed())

		Eventually(received).Should(Receive())
	})

	It("carries the locked count and window in the typed payload", func() {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		event := events.NewTaskFinalSubmitEvent(10, 3, &start, nil)

		data, ok := events.TaskFinalSubmitFromEvent(event)
		Expect(ok).To(BeTrue())
		Expect(data.UserID).To(Equal(int64(10)))
		Expect(data.LockedCount).To(Equal(int64(3)))
		Expect(data.StartDate).To(Equal("2025-06-01"))
		Expect(data.EndDate).To(BeEmpty())
	})

	It("does not decode events of another type", func() {
		_, ok := events.TaskFinalSubmitFromEvent(events.BaseEvent{ID: "1", Type: "other", Timestamp: time.Now()})
		Expect(ok).To(BeFalse())
	})

	It("is a no-op with no subscribers", func() {
		event := events.NewTaskFinalSubmitEvent(10, 1, nil, nil)
		Expect(bus.Publish(context.Background(), event)).To(Succeed())
	})

	It("stops synchronous delivery on the first handler error", func() {
		calls := 0
		bus.Subscribe("t", func(ctx context.Context, event events.Event) error {
			calls++
			return errors.New("boom")
		})
		bus.Subscribe("t", func(ctx context.Context, event events.Event) error {
			calls++
			return nil
		})

		err := bus.PublishSync(context.Background(), events.BaseEvent{ID: "1", Type: "t", Timestamp: time.Now()})
		Expect(err).To(HaveOccurred())
		Expect(calls).To(Equal(1))
	})
})
