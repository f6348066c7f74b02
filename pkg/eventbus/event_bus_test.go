package eventbus_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/colophon-press/colophon/pkg/eventbus"
)

type workCreated struct {
	Title string
}

type workDeleted struct {
	Title string
}

func newBus() eventbus.EventBus {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return eventbus.NewEventPublisher(log)
}

func TestPublishDispatchesByArgumentType(t *testing.T) {
	bus := newBus()

	var created []workCreated
	var deleted []workDeleted
	bus.Subscribe(func(e workCreated) { created = append(created, e) })
	bus.Subscribe(func(e workDeleted) { deleted = append(deleted, e) })

	bus.Publish(workCreated{Title: "first"})
	bus.Publish(workCreated{Title: "second"})
	bus.Publish(workDeleted{Title: "gone"})

	assert.Len(t, created, 2)
	assert.Len(t, deleted, 1)
	assert.Equal(t, "gone", deleted[0].Title)
}

func TestUnsubscribe(t *testing.T) {
	bus := newBus()

	calls := 0
	handler := func(workCreated) { calls++ }
	bus.Subscribe(handler)
	assert.Equal(t, 1, bus.SubscribersCount())

	bus.Unsubscribe(handler)
	assert.Equal(t, 0, bus.SubscribersCount())

	bus.Publish(workCreated{})
	assert.Equal(t, 0, calls)
}

func TestPublishRecoversFromPanickingHandler(t *testing.T) {
	bus := newBus()

	var reached bool
	bus.Subscribe(func(workCreated) { panic("boom") })
	bus.Subscribe(func(workCreated) { reached = true })

	assert.NotPanics(t, func() { bus.Publish(workCreated{}) })
	assert.True(t, reached)
}

func TestClear(t *testing.T) {
	bus := newBus()
	bus.Subscribe(func(workCreated) {})
	bus.Subscribe(func(workDeleted) {})
	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}

func TestMatchSignature(t *testing.T) {
	assert.True(t, eventbus.MatchSignature(func(workCreated) {}, []interface{}{workCreated{}}))
	assert.False(t, eventbus.MatchSignature(func(workDeleted) {}, []interface{}{workCreated{}}))
	assert.False(t, eventbus.MatchSignature(func(workCreated, workCreated) {}, []interface{}{workCreated{}}))
	assert.False(t, eventbus.MatchSignature(42, []interface{}{workCreated{}}))
}
