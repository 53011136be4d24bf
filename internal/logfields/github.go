package logfields

import "go.uber.org/zap"

func EventType(val string) zap.Field {
	return zap.String("github.event_type", val)
}

func EventID(val string) zap.Field {
	return zap.String("github.event_id", val)
}

func Repository(val string) zap.Field {
	return zap.String("github.repository", val)
}

func RepositoryOwner(val string) zap.Field {
	return zap.String("github.repository_owner", val)
}
