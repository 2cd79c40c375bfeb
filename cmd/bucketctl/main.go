// bucketctl manages MinIO buckets against a declared bucket set.
//
//	bucketctl --create            reconcile-create every declared bucket
//	bucketctl --list              list all buckets on the server
//	bucketctl --status            report existence of declared buckets
//	bucketctl --delete BUCKET     delete a bucket (--force removes objects first)
//
// The declared set comes from MINIO_BUCKETS (comma-separated); connection
// settings from the environment, with .env support. Without flags the tool
// reports declared-bucket status followed by the full bucket list.
package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/koustreak/miniokit/internal/bucket"
	"github.com/koustreak/miniokit/internal/cli"
	"github.com/koustreak/miniokit/internal/config"
	"github.com/koustreak/miniokit/internal/logger"
	"github.com/koustreak/miniokit/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		create       = flag.Bool("create", false, "create every declared bucket that is absent")
		list         = flag.Bool("list", false, "list all buckets")
		status       = flag.Bool("status", false, "report existence of the declared buckets")
		deleteBucket = flag.String("delete", "", "delete the named bucket")
		force        = flag.Bool("force", false, "with --delete, remove all objects first")
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

	// Operations over the declared set need it present; fail before any
	// server contact.
	needDeclared := *create || *status || noActionRequested(*create, *list, *status, *deleteBucket)
	if needDeclared {
		if err := cfg.RequireBuckets(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cli.ExitCode(err)
		}
	}

	ctx := context.Background()

	store, err := cli.DataStore(ctx, cfg)
	if err != nil {
		log.ErrorWith("cannot connect to storage server", err)
		return cli.ExitCode(err)
	}
	defer store.Close()

	mgr := bucket.New(store, log)

	switch {
	case *create:
		results := mgr.CreateDeclared(ctx, cfg.DeclaredBuckets)
		report.BucketResults(os.Stdout, results)
		return cli.BatchExitCode(results)

	case *status:
		results := mgr.Status(ctx, cfg.DeclaredBuckets)
		report.BucketResults(os.Stdout, results)
		return cli.BatchExitCode(results)

	case *deleteBucket != "":
		if err := mgr.Delete(ctx, *deleteBucket, *force); err != nil {
			log.ErrorWith("delete bucket failed", err)
			return cli.ExitCode(err)
		}
		fmt.Printf("bucket %s deleted\n", *deleteBucket)
		return cli.ExitOK

	case *list:
		return listAll(ctx, mgr, log)

	default:
		// No flag: declared status plus the full listing.
		results := mgr.Status(ctx, cfg.DeclaredBuckets)
		report.BucketResults(os.Stdout, results)
		if code := listAll(ctx, mgr, log); code != cli.ExitOK {
			return code
		}
		return cli.BatchExitCode(results)
	}
}

func listAll(ctx context.Context, mgr *bucket.Manager, log *logger.Logger) int {
	buckets, err := mgr.ListAll(ctx)
	if err != nil {
		log.ErrorWith("list buckets failed", err)
		return cli.ExitCode(err)
	}
	report.BucketTable(os.Stdout, buckets)
	return cli.ExitOK
}

func noActionRequested(create, list, status bool, deleteBucket string) bool {
	return !create && !list && !status && deleteBucket == ""
}
