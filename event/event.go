// Copyright 2025 Fanstake Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Size of buffer for each subscriber's event channel
	eventBufferSize = 20
)

type EventType string

type Event struct {
	Timestamp time.Time
	Data      any
	Type      EventType
}

func NewEvent(eventType EventType, eventData any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      eventData,
	}
}

type EventSubscriberId int

// EventBus is a simple in-process event bus. Subscribers receive events
// on a buffered channel; a subscriber that stops draining its channel
// blocks publishers for that event type.
type EventBus struct {
	sync.Mutex
	subscribers      map[EventType]map[EventSubscriberId]chan Event
	lastSubscriberId EventSubscriberId
	metricEvents     *prometheus.CounterVec
}

// NewEventBus creates a new EventBus
func NewEventBus(promRegistry prometheus.Registerer) *EventBus {
	e := &EventBus{
		subscribers: make(map[EventType]map[EventSubscriberId]chan Event),
	}
	if promRegistry != nil {
		promFactory := promauto.With(promRegistry)
		e.metricEvents = promFactory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fanstake_events_total",
				Help: "total events published by type",
			},
			[]string{"type"},
		)
	}
	return e
}

// Subscribe allows a consumer to receive events of a particular type
// via a channel
func (e *EventBus) Subscribe(
	eventType EventType,
) (EventSubscriberId, <-chan Event) {
	e.Lock()
	defer e.Unlock()
	e.lastSubscriberId++
	subId := e.lastSubscriberId
	evtCh := make(chan Event, eventBufferSize)
	if _, ok := e.subscribers[eventType]; !ok {
		e.subscribers[eventType] = make(map[EventSubscriberId]chan Event)
	}
	e.subscribers[eventType][subId] = evtCh
	return subId, evtCh
}

// SubscribeFunc allows a consumer to receive events of a particular type
// via a callback function
func (e *EventBus) SubscribeFunc(
	eventType EventType,
	callbackFunc func(Event),
) EventSubscriberId {
	subId, evtCh := e.Subscribe(eventType)
	go func() {
		for evt := range evtCh {
			callbackFunc(evt)
		}
	}()
	return subId
}

// Unsubscribe stops delivery of events for a particular type for an
// existing subscriber
func (e *EventBus) Unsubscribe(eventType EventType, subId EventSubscriberId) {
	e.Lock()
	defer e.Unlock()
	if subscribers, ok := e.subscribers[eventType]; ok {
		if evtCh, ok := subscribers[subId]; ok {
			close(evtCh)
			delete(subscribers, subId)
		}
	}
}

// Publish allows a producer to send an event of a particular type to
// all subscribers
func (e *EventBus) Publish(eventType EventType, evt Event) {
	e.Lock()
	defer e.Unlock()
	if e.metricEvents != nil {
		e.metricEvents.WithLabelValues(string(eventType)).Inc()
	}
	for _, subCh := range e.subscribers[eventType] {
		subCh <- evt
	}
}

// Stop closes all subscriber channels and drops all subscriptions
func (e *EventBus) Stop() {
	e.Lock()
	defer e.Unlock()
	for eventType, subscribers := range e.subscribers {
		for subId, evtCh := range subscribers {
			close(evtCh)
			delete(subscribers, subId)
		}
		delete(e.subscribers, eventType)
	}
}
