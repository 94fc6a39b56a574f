package usecase

import (
	"context"
	"errors"
	"net/http"

	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

const visitedKeyPrefix = "gentleSoulsVisited"

// 初回訪問のウェルカム通知。訪問済みフラグはKVStoreに置く。
type VisitUsecase struct {
	kv  repo.KVStore
	log zerolog.Logger
}

// DI
func NewVisitUsecase(kv repo.KVStore, log zerolog.Logger) *VisitUsecase {
	return &VisitUsecase{kv: kv, log: log}
}

type VisitOutput struct {
	FirstVisit bool   `json:"first_visit"`
	Notice     string `json:"notice,omitempty"`
}

func (u *VisitUsecase) Track(ctx context.Context, sessionID string) (VisitOutput, error) {
	if sessionID == "" {
		return VisitOutput{}, NewHTTPError(http.StatusBadRequest, "invalid session")
	}

	key := visitedKeyPrefix + ":" + sessionID

	_, err := u.kv.Get(ctx, key)
	if err == nil {
		return VisitOutput{FirstVisit: false}, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		//読めない場合は静かに流す（ウェルカムの連発を避ける）
		u.log.Error().Err(err).Str("key", key).Msg("visited flag load failed")
		return VisitOutput{FirstVisit: false}, nil
	}

	//フラグ書き込みはベストエフォート
	if err := u.kv.Set(ctx, key, "true"); err != nil {
		u.log.Error().Err(err).Str("key", key).Msg("visited flag persist failed")
	}

	return VisitOutput{
		FirstVisit: true,
		Notice:     "Welcome, gentle soul! Take your time exploring",
	}, nil
}
