// internal/platform/di/infra.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "boutique/internal/infra/config"
	"boutique/internal/infra/database"
)

// Infra is shared runtime infrastructure.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager/PG)
// - owns env/config-resolved runtime settings
//
// Firestore is strict (no storefront without the remote store); everything
// else is best-effort: a missing optional client disables its feature and
// the rest of the app keeps running.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client
	DB            *database.DB

	// Runtime settings (resolved once)
	SendGridAPIKey string
	OrderMailFrom  string
	OrderMailTo    string
}

func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("di.infra: config is nil")
	}

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	inf := &Infra{
		Config:        cfg,
		ProjectID:     projectID,
		OrderMailFrom: strings.TrimSpace(cfg.OrderMailFrom),
		OrderMailTo:   strings.TrimSpace(cfg.OrderMailTo),
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] Using credentials file for GCP clients")
	} else {
		log.Printf("[di.infra] Using Application Default Credentials")
	}

	// 1) Firestore (strict)
	{
		fsClient, err := firestore.NewClient(ctx, inf.ProjectID, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("di.infra: firestore.NewClient failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fsClient
		log.Printf("[di.infra] Firestore connected project=%s", inf.ProjectID)
	}

	// 2) Firebase App/Auth (best-effort; identity features degrade without it)
	{
		fbCfg := &firebase.Config{ProjectID: inf.ProjectID}
		fbApp, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[di.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[di.infra] Firebase Auth initialized")
			}
		}
	}

	// 3) GCS (best-effort; only backs the catalog image probe)
	{
		gcsClient, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: storage.NewClient failed: %v (image probing disabled)", err)
		} else {
			inf.GCS = gcsClient
		}
	}

	// 4) Secret Manager (best-effort; used to resolve the SendGrid key)
	{
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: secretmanager.NewClient failed: %v", err)
			sm = nil
		}
		inf.SecretManager = sm
	}
	inf.SendGridAPIKey = inf.resolveSendGridKey(ctx)

	// 5) PostgreSQL (optional; archive feature only)
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		db, err := database.NewConnection(dsn)
		if err != nil {
			log.Printf("[di.infra] WARN: postgres connect failed: %v (order archive disabled)", err)
		} else {
			inf.DB = db
		}
	}

	if inf.Firestore == nil {
		_ = inf.Close()
		return nil, errors.New("di.infra: firestore client is nil after initialization (unexpected)")
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
	return nil
}

// resolveSendGridKey prefers Secret Manager over the raw env value.
func (i *Infra) resolveSendGridKey(ctx context.Context) string {
	cfg := i.Config

	secretName := strings.TrimSpace(cfg.SendGridSecretName)
	if secretName != "" && i.SecretManager != nil {
		name := "projects/" + i.ProjectID + "/secrets/" + secretName + "/versions/latest"
		resp, err := i.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
		if err != nil {
			log.Printf("[di.infra] WARN: AccessSecretVersion failed (%s): %v (falling back to env)", secretName, err)
		} else if resp != nil && resp.Payload != nil {
			key := strings.TrimSpace(string(resp.Payload.Data))
			if key != "" {
				log.Printf("[di.infra] SendGrid key resolved from Secret Manager")
				return key
			}
		}
	}

	return strings.TrimSpace(cfg.SendGridAPIKey)
}
