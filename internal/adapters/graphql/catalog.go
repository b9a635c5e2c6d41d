package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/location"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/rank"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/store"
)

type storeResolver struct {
	s *store.Store
}

func (r storeResolver) ID() gql.ID         { return gql.ID(r.s.ID) }
func (r storeResolver) Name() string       { return r.s.Name }
func (r storeResolver) LocationID() gql.ID { return gql.ID(r.s.LocationID) }

type locationResolver struct {
	l *location.Location
}

func (r locationResolver) ID() gql.ID      { return gql.ID(r.l.ID) }
func (r locationResolver) Country() string { return r.l.Country }
func (r locationResolver) State() string   { return r.l.State }

type rankResolver struct {
	rk *rank.Rank
}

func (r rankResolver) ID() gql.ID          { return gql.ID(r.rk.ID) }
func (r rankResolver) Name() string        { return r.rk.Name }
func (r rankResolver) Description() string { return r.rk.Description }

type createStoreInput struct {
	Name       string
	LocationID gql.ID
}

type createLocationInput struct {
	Country string
	State   string
}

type createRankInput struct {
	Name        string
	Description string
}

// Store は ID で店舗を取得します。
func (r *Resolver) Store(ctx context.Context, args struct{ Input fetchInput }) (*storeResolver, error) {
	found, err := r.svc.Stores.GetStore(ctx, store.GetStoreInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &storeResolver{s: found}, nil
}

// GetStores は全店舗を取得します。
func (r *Resolver) GetStores(ctx context.Context) ([]*storeResolver, error) {
	found, err := r.svc.Stores.ListStores(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*storeResolver, 0, len(found))
	for _, s := range found {
		out = append(out, &storeResolver{s: s})
	}
	return out, nil
}

// CreateStore は店舗を作成します。
func (r *Resolver) CreateStore(ctx context.Context, args struct{ Input createStoreInput }) (*storeResolver, error) {
	created, err := r.svc.Stores.CreateStore(ctx, store.CreateStoreInput{
		Name:       args.Input.Name,
		LocationID: string(args.Input.LocationID),
	})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &storeResolver{s: created}, nil
}

// Location は ID で所在地を取得します。
func (r *Resolver) Location(ctx context.Context, args struct{ Input fetchInput }) (*locationResolver, error) {
	found, err := r.svc.Locations.GetLocation(ctx, location.GetLocationInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &locationResolver{l: found}, nil
}

// GetLocations は全所在地を取得します。
func (r *Resolver) GetLocations(ctx context.Context) ([]*locationResolver, error) {
	found, err := r.svc.Locations.ListLocations(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*locationResolver, 0, len(found))
	for _, l := range found {
		out = append(out, &locationResolver{l: l})
	}
	return out, nil
}

// CreateLocation は所在地を作成します。
func (r *Resolver) CreateLocation(ctx context.Context, args struct{ Input createLocationInput }) (*locationResolver, error) {
	created, err := r.svc.Locations.CreateLocation(ctx, location.CreateLocationInput{
		Country: args.Input.Country,
		State:   args.Input.State,
	})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &locationResolver{l: created}, nil
}

// Rank は ID で役職を取得します。
func (r *Resolver) Rank(ctx context.Context, args struct{ Input fetchInput }) (*rankResolver, error) {
	found, err := r.svc.Ranks.GetRank(ctx, rank.GetRankInput{ID: string(args.Input.ID)})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &rankResolver{rk: found}, nil
}

// GetRanks は全役職を取得します。
func (r *Resolver) GetRanks(ctx context.Context) ([]*rankResolver, error) {
	found, err := r.svc.Ranks.ListRanks(ctx)
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	out := make([]*rankResolver, 0, len(found))
	for _, rk := range found {
		out = append(out, &rankResolver{rk: rk})
	}
	return out, nil
}

// CreateRank は役職を作成します。
func (r *Resolver) CreateRank(ctx context.Context, args struct{ Input createRankInput }) (*rankResolver, error) {
	created, err := r.svc.Ranks.CreateRank(ctx, rank.CreateRankInput{
		Name:        args.Input.Name,
		Description: args.Input.Description,
	})
	if err != nil {
		return nil, r.toGraphQLError(err)
	}
	return &rankResolver{rk: created}, nil
}
