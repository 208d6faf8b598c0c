// Package tokencleanupworker periodically removes expired refresh, invite
// and password reset tokens.
package tokencleanupworker

import (
	"context"
	"time"

	"vacation-planner-backend/db"
	authstore "vacation-planner-backend/lib/auth/store"
	baseworker "vacation-planner-backend/lib/utils/baseworker"
)

type workerImpl struct {
	baseworker.BaseImpl
	store authstore.Provider
}

func StartWorker(ctx context.Context) {
	worker := workerImpl{
		BaseImpl: *baseworker.NewInstance("token-cleanup", time.Minute, time.Hour),
		store:    authstore.NewInstance(db.DB),
	}
	go worker.Run(ctx, worker.handle)
}

func (i workerImpl) handle(ctx context.Context) {
	deleted, err := i.store.DeleteExpiredTokens(time.Now())
	if err != nil {
		i.GetLogger().WithError(err).Error("failed to clean up expired tokens")
		return
	}
	if deleted > 0 {
		i.GetLogger().WithField("deleted", deleted).Info("expired tokens removed")
	}
}
