package admin

import "context"

type UserRepository interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type HitCounter interface {
	Load() int64
	Reset()
}
