package nordigen

import "github.com/go-faster/errors"

var (
	ErrNoSecrets = errors.New("secret id and secret key are required")
	// ErrNoRequisitionID account data was requested before a requisition was created
	ErrNoRequisitionID = errors.New("requisition id is empty")
	// ErrNoAccounts the end user has not completed authorisation with the bank yet
	ErrNoAccounts = errors.New("account list is empty, make sure the authorisation with the bank is completed")
)
