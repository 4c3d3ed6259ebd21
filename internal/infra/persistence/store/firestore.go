// Package store contains the concrete implementation of the persistence
// layer on Cloud Firestore.
package store

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"tapadmin/config"
	"tapadmin/internal/domain/lifecycle"
)

// Collection names. Reward documents live in three places; the other
// collections are single-homed.
const (
	collectionMerchants   = "merchants"
	collectionCustomers   = "customers"
	collectionRewards     = "rewards"
	collectionMemberships = "memberships"
	collectionJobs        = "adminjobs"
	collectionAdmins      = "admins"
	collectionEnquiries   = "merchantenquiry"

	subTransactions = "transactions"
	subRedemptions  = "redemptions"
)

// NewClient builds the Firestore client. Named databases connect directly;
// the default database goes through the Firebase app so emulator and ADC
// resolution behave the same way the mobile backends do.
func NewClient(lc fx.Lifecycle, cfg *config.Config) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	var client *firestore.Client
	var err error
	if cfg.Firestore.DatabaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, cfg.Firestore.ProjectID, cfg.Firestore.DatabaseID, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "create firestore client")
		}
	} else {
		app, appErr := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
		if appErr != nil {
			return nil, errors.Wrap(appErr, "create firebase app")
		}
		client, err = app.Firestore(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "create firestore client")
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
