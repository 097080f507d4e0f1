package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/towjek/services/rides/mocks"
)

func TestSweeper_RunsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRideUC(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan struct{}, 1)

	gomock.InOrder(
		uc.EXPECT().ExpireProposals(gomock.Any()).Return(0, errors.New("db unavailable")),
		uc.EXPECT().ExpireProposals(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
			cancel()
			swept <- struct{}{}
			return 3, nil
		}),
		// the ticker may fire once more before Run observes the cancel
		uc.EXPECT().ExpireProposals(gomock.Any()).Return(0, nil).AnyTimes(),
	)

	done := make(chan struct{})
	go func() {
		NewSweeper(uc, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ran")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
