package api

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
)

const (
	agreementsEndpoint = "agreements/enduser"

	DefaultMaxHistoricalDays  = 90
	DefaultAccessValidForDays = 90
	DefaultPageLimit          = 100
)

// AgreementRequest zero values fall back to 90 days windows and the full access scope.
type AgreementRequest struct {
	InstitutionID      string
	MaxHistoricalDays  int
	AccessValidForDays int
	AccessScope        []model.AccessScope
}

type AgreementService interface {
	Create(ctx context.Context, req AgreementRequest) (*model.Agreement, error)
	List(ctx context.Context, limit, offset int) (*model.AgreementList, error)
	Get(ctx context.Context, id string) (*model.Agreement, error)
	Delete(ctx context.Context, id string) (*model.Message, error)
	Accept(ctx context.Context, id, ip, userAgent string) (*model.Agreement, error)
}

type agreements struct {
	client Requester
}

func NewAgreementService(client Requester) AgreementService {
	return &agreements{client: client}
}

func (s *agreements) Create(ctx context.Context, req AgreementRequest) (*model.Agreement, error) {

	logger.Debugf("Create agreement for institution %s", req.InstitutionID)

	scope := req.AccessScope
	if len(scope) == 0 {
		scope = model.FullAccessScope()
	}
	maxDays := req.MaxHistoricalDays
	if maxDays == 0 {
		maxDays = DefaultMaxHistoricalDays
	}
	validDays := req.AccessValidForDays
	if validDays == 0 {
		validDays = DefaultAccessValidForDays
	}

	payload := Params{
		"max_historical_days":   maxDays,
		"access_valid_for_days": validDays,
		"access_scope":          scope,
		"institution_id":        req.InstitutionID,
	}

	res := &model.Agreement{}
	if err := s.client.Request(ctx, MethodPost, agreementsEndpoint+"/", payload, res); err != nil {
		return nil, err
	}
	return res, nil
}

// List agreements page; limit 0 means the default page size of 100.
func (s *agreements) List(ctx context.Context, limit, offset int) (*model.AgreementList, error) {

	logger.Debugf("Agreements list, limit: %d offset: %d", limit, offset)

	if limit == 0 {
		limit = DefaultPageLimit
	}

	res := &model.AgreementList{}
	err := s.client.Request(ctx, MethodGet, agreementsEndpoint+"/", Params{"limit": limit, "offset": offset}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *agreements) Get(ctx context.Context, id string) (*model.Agreement, error) {

	logger.Debugf("Agreement by id: %s", id)

	res := &model.Agreement{}
	if err := s.client.Request(ctx, MethodGet, agreementsEndpoint+"/"+id, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *agreements) Delete(ctx context.Context, id string) (*model.Message, error) {

	logger.Debugf("Delete agreement: %s", id)

	res := &model.Message{}
	if err := s.client.Request(ctx, MethodDelete, agreementsEndpoint+"/"+id, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Accept records end user acceptance of the agreement, made from the given IP address and browser.
func (s *agreements) Accept(ctx context.Context, id, ip, userAgent string) (*model.Agreement, error) {

	logger.Debugf("Accept agreement: %s", id)

	payload := Params{
		"user_agent": userAgent,
		"ip_address": ip,
	}

	res := &model.Agreement{}
	if err := s.client.Request(ctx, MethodPut, agreementsEndpoint+"/"+id+"/accept/", payload, res); err != nil {
		return nil, err
	}
	return res, nil
}
