package nordigen

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/api"
	"github.com/alapierre/go-nordigen-client/nordigen/model"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// SessionRequest input of InitializeSession. Zero day windows default to 90.
type SessionRequest struct {
	RedirectURI        string
	InstitutionID      string
	ReferenceID        string
	MaxHistoricalDays  int
	AccessValidForDays int
	UserLanguage       string
}

// NewReference random reference id for a requisition.
func NewReference() string {
	return uuid.NewString()
}

// InitializeSession creates an end user agreement for the institution and a requisition bound to it.
// The returned link starts the authorisation in the bank.
//
// When the requisition cannot be created the agreement stays on the API side; it is not deleted.
func (c *Client) InitializeSession(ctx context.Context, req SessionRequest) (*model.RequisitionDTO, error) {

	logger.Debugf("Initialize session for institution %s", req.InstitutionID)

	agreement, err := c.agreements.Create(ctx, api.AgreementRequest{
		InstitutionID:      req.InstitutionID,
		MaxHistoricalDays:  req.MaxHistoricalDays,
		AccessValidForDays: req.AccessValidForDays,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create agreement")
	}

	requisition, err := c.requisitions.Create(ctx, api.RequisitionRequest{
		RedirectURI:   req.RedirectURI,
		ReferenceID:   req.ReferenceID,
		InstitutionID: req.InstitutionID,
		Agreement:     agreement.ID,
		UserLanguage:  req.UserLanguage,
	})
	if err != nil {
		logger.WithField("agreement", agreement.ID).Warn("requisition not created, agreement left without requisition")
		return nil, errors.Wrap(err, "create requisition")
	}

	return &model.RequisitionDTO{
		Link:          requisition.Link,
		RequisitionID: requisition.ID,
	}, nil
}
