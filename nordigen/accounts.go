package nordigen

import (
	"context"

	"github.com/alapierre/go-nordigen-client/nordigen/api"
	"github.com/alapierre/go-nordigen-client/nordigen/model"
	"github.com/go-faster/errors"
)

// RequisitionAccounts account ids granted through the requisition.
func (c *Client) RequisitionAccounts(ctx context.Context, requisitionID string) ([]string, error) {
	if requisitionID == "" {
		return nil, ErrNoRequisitionID
	}

	r, err := c.requisitions.Get(ctx, requisitionID)
	if err != nil {
		return nil, err
	}
	if len(r.Accounts) == 0 {
		return nil, errors.Wrapf(ErrNoAccounts, "requisition %s status %s", r.ID, r.Status)
	}
	return r.Accounts, nil
}

// FetchAccounts reads metadata, details, balances and transactions of every account in the requisition,
// one request at a time.
func (c *Client) FetchAccounts(ctx context.Context, requisitionID string, q api.AccountQuery) ([]model.AccountData, error) {

	ids, err := c.RequisitionAccounts(ctx, requisitionID)
	if err != nil {
		return nil, err
	}

	res := make([]model.AccountData, 0, len(ids))
	for _, id := range ids {
		d, err := fetchAccount(ctx, c.Account(id), q)
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", id)
		}
		res = append(res, *d)
	}
	return res, nil
}

func fetchAccount(ctx context.Context, acc api.AccountService, q api.AccountQuery) (*model.AccountData, error) {
	var (
		d   = &model.AccountData{ID: acc.ID()}
		err error
	)

	if d.Metadata, err = acc.Metadata(ctx); err != nil {
		return nil, err
	}
	if d.Details, err = acc.Details(ctx, q); err != nil {
		return nil, err
	}
	if d.Balances, err = acc.Balances(ctx); err != nil {
		return nil, err
	}
	if d.Transactions, err = acc.Transactions(ctx, q); err != nil {
		return nil, err
	}
	return d, nil
}
