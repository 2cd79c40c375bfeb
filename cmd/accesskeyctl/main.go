// accesskeyctl manages MinIO access keys (service credentials).
//
//	accesskeyctl --list
//	accesskeyctl --create [--access-key ID] [--secret-key SECRET] [--name NAME] [--description TEXT]
//	accesskeyctl --delete KEY
//	accesskeyctl --info KEY
//
// Connection settings come from the environment (MINIO_ENDPOINT,
// MINIO_ROOT_USER, MINIO_ROOT_PASSWORD, …), with .env support.
package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/koustreak/miniokit/internal/accesskey"
	"github.com/koustreak/miniokit/internal/cli"
	"github.com/koustreak/miniokit/internal/config"
	"github.com/koustreak/miniokit/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		list        = flag.Bool("list", false, "list access keys")
		create      = flag.Bool("create", false, "create a new access key")
		accessKey   = flag.String("access-key", "", "access key ID for --create (generated when omitted)")
		secretKey   = flag.String("secret-key", "", "secret key for --create (generated when omitted)")
		name        = flag.String("name", "", "label for the created key")
		description = flag.String("description", "", "description for the created key")
		deleteKey   = flag.String("delete", "", "delete the named access key")
		infoKey     = flag.String("info", "", "show details for the named access key")
	)
	flag.Parse()

	cfg, err := config.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCode(err)
	}

	log := cli.NewLogger(cfg)
	log.With().Str("endpoint", cfg.Endpoint).Str("alias", cfg.Alias).Logger().
		Debug("configuration resolved")

	ctx := context.Background()

	store, err := cli.AdminStore(ctx, cfg)
	if err != nil {
		log.ErrorWith("cannot connect to admin API", err)
		return cli.ExitCode(err)
	}
	defer store.Close()

	mgr := accesskey.New(store, cfg.DefaultKeyName, log)

	switch {
	case *create:
		creds, err := mgr.Create(ctx, accesskey.CreateOptions{
			AccessKey:   *accessKey,
			SecretKey:   *secretKey,
			Name:        *name,
			Description: *description,
		})
		if err != nil {
			log.ErrorWith("create access key failed", err)
			return cli.ExitCode(err)
		}
		label := *name
		if label == "" {
			label = cfg.DefaultKeyName
		}
		report.CredentialsCreated(os.Stdout, creds, label)

	case *deleteKey != "":
		if err := mgr.Delete(ctx, *deleteKey); err != nil {
			log.ErrorWith("delete access key failed", err)
			return cli.ExitCode(err)
		}
		fmt.Printf("access key %s deleted\n", *deleteKey)

	case *infoKey != "":
		key, err := mgr.Info(ctx, *infoKey)
		if err != nil {
			log.ErrorWith("access key info failed", err)
			return cli.ExitCode(err)
		}
		report.AccessKeyDetail(os.Stdout, key)

	case *list:
		fallthrough
	default:
		keys, err := mgr.List(ctx)
		if err != nil {
			log.ErrorWith("list access keys failed", err)
			return cli.ExitCode(err)
		}
		report.AccessKeyTable(os.Stdout, keys)
	}

	return cli.ExitOK
}
