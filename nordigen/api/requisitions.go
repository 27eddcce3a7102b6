package api

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/model"
)

const requisitionsEndpoint = "requisitions"

type RequisitionRequest struct {
	RedirectURI   string
	ReferenceID   string
	InstitutionID string
	// Agreement optional end user agreement id, the API creates a default agreement without it
	Agreement string
	// UserLanguage optional two letter language code enforced on the bank selection pages
	UserLanguage string
}

type RequisitionService interface {
	Create(ctx context.Context, req RequisitionRequest) (*model.Requisition, error)
	List(ctx context.Context, limit, offset int) (*model.RequisitionList, error)
	Get(ctx context.Context, id string) (*model.Requisition, error)
	Delete(ctx context.Context, id string) (*model.Message, error)
}

type requisitions struct {
	client Requester
}

func NewRequisitionService(client Requester) RequisitionService {
	return &requisitions{client: client}
}

func (s *requisitions) Create(ctx context.Context, req RequisitionRequest) (*model.Requisition, error) {

	logger.Debugf("Create requisition, reference: %s", req.ReferenceID)

	payload := Params{
		"redirect":       req.RedirectURI,
		"reference":      req.ReferenceID,
		"institution_id": req.InstitutionID,
	}
	if req.UserLanguage != "" {
		payload["user_language"] = req.UserLanguage
	}
	if req.Agreement != "" {
		payload["agreement"] = req.Agreement
	}

	res := &model.Requisition{}
	if err := s.client.Request(ctx, MethodPost, requisitionsEndpoint+"/", payload, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *requisitions) List(ctx context.Context, limit, offset int) (*model.RequisitionList, error) {

	logger.Debugf("Requisitions list, limit: %d offset: %d", limit, offset)

	if limit == 0 {
		limit = DefaultPageLimit
	}

	res := &model.RequisitionList{}
	err := s.client.Request(ctx, MethodGet, requisitionsEndpoint+"/", Params{"limit": limit, "offset": offset}, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *requisitions) Get(ctx context.Context, id string) (*model.Requisition, error) {

	logger.Debugf("Requisition by id: %s", id)

	res := &model.Requisition{}
	if err := s.client.Request(ctx, MethodGet, requisitionsEndpoint+"/"+id+"/", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *requisitions) Delete(ctx context.Context, id string) (*model.Message, error) {

	logger.Debugf("Delete requisition: %s", id)

	res := &model.Message{}
	if err := s.client.Request(ctx, MethodDelete, requisitionsEndpoint+"/"+id, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
