package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/doeixd/dom/internal/config"
	"github.com/doeixd/dom/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		output string
		bucket string
		prefix string
		region string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export pages to static HTML",
		Long: `Render the built-in demo pages to static HTML files.

Pages are written to the output directory; with --bucket they are
also uploaded to S3 using credentials from the environment.

Examples:
  dom export
  dom export --output=public --pretty
  dom export --bucket=my-site --prefix=v2 --region=us-east-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output, bucket, prefix, region, pretty)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from dom.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "S3 region")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent HTML output")

	return cmd
}

func runExport(output, bucket, prefix, region string, pretty bool) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Export.Output
	}
	if bucket == "" {
		bucket = cfg.Export.Bucket
	}
	if prefix == "" {
		prefix = cfg.Export.Prefix
	}

	exporter := export.New(export.Options{Pretty: pretty || cfg.Export.Pretty})
	pages := staticPages()

	if err := exporter.WriteDir(output, pages); err != nil {
		return err
	}
	success("Wrote %d page(s) to %s", len(pages), output)

	if bucket == "" {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: envCredentials(),
	})
	uploader := export.NewS3Uploader(client, bucket, prefix)
	if err := uploader.Upload(ctx, exporter.Render(pages)); err != nil {
		return fmt.Errorf("upload to s3://%s: %w", bucket, err)
	}
	success("Uploaded %d page(s) to s3://%s/%s", len(pages), bucket, prefix)

	return nil
}

// envCredentials reads static credentials from the standard AWS
// environment variables.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return creds, nil
	})
}
