package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/expense-tracker/infra/cloudrun"
	"github.com/GregMSThompson/expense-tracker/infra/docker"
	"github.com/GregMSThompson/expense-tracker/infra/firestore"
	"github.com/GregMSThompson/expense-tracker/infra/identity"
	"github.com/GregMSThompson/expense-tracker/infra/provider"
	"github.com/GregMSThompson/expense-tracker/infra/vertex"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable identity platform to allow firebase sign-in
		ident, err := identity.SetupIdentity(ctx, prov)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the project
		if err := firestore.SetupFirestore(ctx, prov); err != nil {
			return err
		}

		// enable vertex for monthly insights
		if err := vertex.SetupVertex(ctx, prov); err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, ident, repo)
		return err
	})
}
