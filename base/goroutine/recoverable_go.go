package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/auctionindexer/base/log"
)

var (
	logger = log.Log()
)

type PanicEvent struct {
	Name  string
	Panic interface{}
	Stack []byte
}

type options struct {
	name           string
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

// WithName tags the panic log and PanicEvent
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel receives one
// PanicEvent if f panics, otherwise it is closed when f returns.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				logger.WithFields(log.Fields{
					"name":  o.name,
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if o.afterRecovered != nil {
					o.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{Name: o.name, Panic: p, Stack: stack}
			}
			close(panicChan)
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}

		f()
	}()

	return panicChan
}
