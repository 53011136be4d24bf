package logfields

import "go.uber.org/zap"

func Event(val string) zap.Field {
	return zap.String("event", val)
}

func EventProvider(val string) zap.Field {
	return zap.String("event_provider", val)
}
