package location

import (
	"context"
	"errors"
	"testing"
)

type fakeLocationRepo struct {
	locations []*Location
}

func (r *fakeLocationRepo) Create(_ context.Context, l *Location) (*Location, error) {
	clone := *l
	clone.ID = "loc-1"
	r.locations = append(r.locations, &clone)
	result := clone
	return &result, nil
}

func (r *fakeLocationRepo) FindByID(_ context.Context, id string) (*Location, error) {
	for _, l := range r.locations {
		if l.ID == id {
			clone := *l
			return &clone, nil
		}
	}
	return nil, ErrLocationNotFound
}

func (r *fakeLocationRepo) List(context.Context) ([]*Location, error) {
	return r.locations, nil
}

func TestService_Locations(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeLocationRepo{})

	created, err := svc.CreateLocation(context.Background(), CreateLocationInput{Country: "Romania", State: "Cluj"})
	if err != nil {
		t.Fatalf("CreateLocation returned error: %v", err)
	}
	if created.ID == "" || created.Country != "Romania" {
		t.Fatalf("unexpected location: %+v", created)
	}

	got, err := svc.GetLocation(context.Background(), GetLocationInput{ID: created.ID})
	if err != nil {
		t.Fatalf("GetLocation returned error: %v", err)
	}
	if got.State != "Cluj" {
		t.Fatalf("unexpected state %q", got.State)
	}

	if _, err := svc.GetLocation(context.Background(), GetLocationInput{ID: ""}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetLocation(context.Background(), GetLocationInput{ID: "loc-9"}); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}

	all, err := svc.ListLocations(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("unexpected list result: %v %v", all, err)
	}
}
