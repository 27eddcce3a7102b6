package api_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alapierre/go-nordigen-client/nordigen/api"
	"github.com/alapierre/go-nordigen-client/nordigen/api/mocks"
	"github.com/golang/mock/gomock"
)

type testRequester struct {
	ctx  context.Context
	ctrl *gomock.Controller
	req  *mocks.MockRequester
}

func getTestRequester(t *testing.T) *testRequester {
	ctrl := gomock.NewController(t)
	return &testRequester{
		ctx:  context.Background(),
		ctrl: ctrl,
		req:  mocks.NewMockRequester(ctrl),
	}
}

// respond decodes body into the result argument, like the real executor does on success.
func respond(body string) func(context.Context, api.Method, string, api.Params, interface{}) error {
	return func(_ context.Context, _ api.Method, _ string, _ api.Params, result interface{}) error {
		return json.Unmarshal([]byte(body), result)
	}
}
