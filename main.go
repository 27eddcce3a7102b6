package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alapierre/go-nordigen-client/nordigen"
	"github.com/alapierre/go-nordigen-client/nordigen/api"
	"github.com/alapierre/go-nordigen-client/nordigen/qr"
	"github.com/alapierre/go-nordigen-client/nordigen/util"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

func main() {

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	secretID := util.GetEnvOrFailed("NORDIGEN_SECRET_ID")
	secretKey := util.GetEnvOrFailed("NORDIGEN_SECRET_KEY")
	country := util.GetEnvOrDefault("NORDIGEN_COUNTRY", "LV")
	institution := util.GetEnvOrDefault("NORDIGEN_INSTITUTION", "SANDBOXFINANCE_SFIN0000")
	redirect := util.GetEnvOrDefault("NORDIGEN_REDIRECT", "http://localhost:8000/results/")

	client, err := nordigen.NewClient(secretID, secretKey, nordigen.WithTimeout(15*time.Second))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	token, err := client.GenerateToken(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Access token valid for %ds\n", token.AccessExpires)

	requisitionID := os.Getenv("NORDIGEN_REQUISITION")
	if requisitionID == "" {
		requisitionID, err = initSession(ctx, client, country, institution, redirect)
		if err != nil {
			panic(err)
		}
		fmt.Print("Finish authorisation in the bank and press Enter...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}

	if _, err := client.RenewToken(ctx, token.Refresh); err != nil {
		panic(err)
	}

	accounts, err := client.FetchAccounts(ctx, requisitionID, api.AccountQuery{
		DateFrom: time.Now().AddDate(0, -1, 0).Format(time.DateOnly),
		DateTo:   time.Now().Format(time.DateOnly),
		Country:  country,
	})
	if err != nil {
		panic(err)
	}

	for _, a := range accounts {
		fmt.Printf("%s %s %s\n", a.ID, a.Metadata.IBAN, a.Metadata.Status)
		fmt.Println(a.Balances)
	}
}

func initSession(ctx context.Context, client *nordigen.Client, country, institution, redirect string) (string, error) {

	id, err := client.Institutions().IDByName(ctx, country, institution)
	if errors.Is(err, api.ErrInstitutionNotFound) {
		// not a name, use as institution id
		id = institution
	} else if err != nil {
		return "", err
	}

	session, err := client.InitializeSession(ctx, nordigen.SessionRequest{
		RedirectURI:   redirect,
		InstitutionID: id,
		ReferenceID:   nordigen.NewReference(),
	})
	if err != nil {
		return "", err
	}

	fmt.Println("Requisition:", session.RequisitionID)
	fmt.Println(session.Link)

	code, err := qr.Terminal(session.Link)
	if err != nil {
		return "", err
	}
	fmt.Println(code)

	return session.RequisitionID, nil
}
