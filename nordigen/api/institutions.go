package api

import (
	"context"
	"strings"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
	"github.com/go-faster/errors"
)

const institutionsEndpoint = "institutions"

// ErrInstitutionNotFound no institution name matched the lookup.
var ErrInstitutionNotFound = errors.New("institution not found")

type InstitutionService interface {
	List(ctx context.Context, country string) ([]model.Institution, error)
	Get(ctx context.Context, id string) (*model.Institution, error)
	IDByName(ctx context.Context, country, name string) (string, error)
}

type institutions struct {
	client Requester
}

func NewInstitutionService(client Requester) InstitutionService {
	return &institutions{client: client}
}

// List all institutions (banks) in the given two letter country, or in every country when country is empty.
func (s *institutions) List(ctx context.Context, country string) ([]model.Institution, error) {

	logger.Debugf("Institutions list, country: %q", country)

	var res []model.Institution
	err := s.client.Request(ctx, MethodGet, institutionsEndpoint+"/", Params{"country": country}, &res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *institutions) Get(ctx context.Context, id string) (*model.Institution, error) {

	logger.Debugf("Institution by id: %s", id)

	res := &model.Institution{}
	err := s.client.Request(ctx, MethodGet, institutionsEndpoint+"/"+id+"/", nil, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// IDByName returns the id of the first institution whose name contains name, ignoring case.
// Order is whatever the API returns.
func (s *institutions) IDByName(ctx context.Context, country, name string) (string, error) {

	list, err := s.List(ctx, country)
	if err != nil {
		return "", err
	}

	needle := strings.ToLower(name)
	for _, bank := range list {
		if strings.Contains(strings.ToLower(bank.Name), needle) {
			return bank.ID, nil
		}
	}
	return "", errors.Wrapf(ErrInstitutionNotFound, "institution %q in country %q", name, country)
}
