package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/rank"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/store"
	"go.uber.org/zap"
)

const (
	KindRank     = "rank"
	KindStore    = "store"
	KindLocation = "location"
)

// RankFinder は役職を ID で取得します。
type RankFinder interface {
	FindByID(ctx context.Context, id string) (*rank.Rank, error)
}

// StoreFinder は店舗を ID で取得します。
type StoreFinder interface {
	FindByID(ctx context.Context, id string) (*store.Store, error)
}

// LocationFinder は所在地を ID で取得します。
type LocationFinder interface {
	FindByID(ctx context.Context, id string) (*location.Location, error)
}

// Recorder は解決できなかった参照を記録します。
type Recorder interface {
	RecordRejection(kind, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordRejection(string, string) {}

// Validator は社員・店舗が持つ参照 ID を検証します。
//
// 解決できない参照はエラーにせず、役職は空文字列、店舗一覧は除外、所在地は nil として返します。
// error を返すのはバックエンド自体の障害時のみです。
type Validator struct {
	ranks     RankFinder
	stores    StoreFinder
	locations LocationFinder
	logger    *zap.Logger
	recorder  Recorder
}

// NewValidator は Validator を生成します。
func NewValidator(ranks RankFinder, stores StoreFinder, locations LocationFinder, logger *zap.Logger, recorder Recorder) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Validator{
		ranks:     ranks,
		stores:    stores,
		locations: locations,
		logger:    logger,
		recorder:  recorder,
	}
}

// ValidateRank は役職 ID を検証し、存在すればそのまま、存在しなければ空文字列を返します。
func (v *Validator) ValidateRank(ctx context.Context, id string) (string, error) {
	res, err := v.ResolveRank(ctx, id)
	if err != nil {
		return "", err
	}
	if !res.Resolved() {
		return "", nil
	}
	return id, nil
}

// ValidateStoreList は解決できる店舗 ID だけを入力順に返します。重複は保持されます。
func (v *Validator) ValidateStoreList(ctx context.Context, ids []string) ([]string, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		res, err := v.ResolveStore(ctx, id)
		if err != nil {
			return nil, err
		}
		if res.Resolved() {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

// ValidateLocation は所在地を解決して返します。解決できない場合は nil を返します。
func (v *Validator) ValidateLocation(ctx context.Context, id string) (*location.Location, error) {
	if strings.TrimSpace(id) == "" {
		v.reject(KindLocation, id, OutcomeInvalid)
		return nil, nil
	}

	loc, err := v.locations.FindByID(ctx, id)
	outcome, err := classify(err, location.ErrLocationNotFound, location.ErrInvalidID)
	if err != nil {
		return nil, fmt.Errorf("resolve location %q: %w", id, err)
	}
	if outcome != OutcomeResolved {
		v.reject(KindLocation, id, outcome)
		return nil, nil
	}
	return loc, nil
}

// ResolveRank は役職 ID の解決結果を区分付きで返します。
func (v *Validator) ResolveRank(ctx context.Context, id string) (Resolution, error) {
	return v.resolve(ctx, KindRank, id, func(ctx context.Context) (Outcome, error) {
		_, err := v.ranks.FindByID(ctx, id)
		return classify(err, rank.ErrRankNotFound, rank.ErrInvalidID)
	})
}

// ResolveStore は店舗 ID の解決結果を区分付きで返します。
func (v *Validator) ResolveStore(ctx context.Context, id string) (Resolution, error) {
	return v.resolve(ctx, KindStore, id, func(ctx context.Context) (Outcome, error) {
		_, err := v.stores.FindByID(ctx, id)
		return classify(err, store.ErrStoreNotFound, store.ErrInvalidID)
	})
}

func (v *Validator) resolve(ctx context.Context, kind, id string, lookup func(context.Context) (Outcome, error)) (Resolution, error) {
	if strings.TrimSpace(id) == "" {
		v.reject(kind, id, OutcomeInvalid)
		return Resolution{ID: id, Outcome: OutcomeInvalid}, nil
	}

	outcome, err := lookup(ctx)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %s %q: %w", kind, id, err)
	}
	if outcome != OutcomeResolved {
		v.reject(kind, id, outcome)
	}
	return Resolution{ID: id, Outcome: outcome}, nil
}

func (v *Validator) reject(kind, id string, outcome Outcome) {
	v.recorder.RecordRejection(kind, outcome.String())
	v.logger.Warn("reference dropped",
		zap.String("kind", kind),
		zap.String("id", id),
		zap.Stringer("outcome", outcome),
	)
}

func classify(err, notFound, invalid error) (Outcome, error) {
	switch {
	case err == nil:
		return OutcomeResolved, nil
	case errors.Is(err, invalid):
		return OutcomeInvalid, nil
	case errors.Is(err, notFound):
		return OutcomeNotFound, nil
	default:
		return 0, err
	}
}
