package seed

import (
	"Food-Recipes-Backend/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrUnsupportedFormat = errors.New("unsupported seed format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the bundle format from the file extension.
func FormatFromPath(location string) (Format, error) {
	switch strings.ToLower(path.Ext(location)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, location)
	}
}

func ParseBundle(data []byte, format Format) (*Bundle, error) {
	bundle := &Bundle{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, bundle); err != nil {
			return nil, fmt.Errorf("parse json bundle: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, bundle); err != nil {
			return nil, fmt.Errorf("parse yaml bundle: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return bundle, nil
}

// ReadBundle loads a bundle from a local path or from s3://bucket/key. s3 may
// be nil when location is local.
func ReadBundle(ctx context.Context, location string, s3 storage.AwsS3) (*Bundle, error) {
	format, err := FormatFromPath(location)
	if err != nil {
		return nil, err
	}

	var data []byte
	if storage.IsS3URI(location) {
		if s3 == nil {
			return nil, fmt.Errorf("s3 client required to read %s", location)
		}
		bucket, key, err := storage.ParseS3URI(location)
		if err != nil {
			return nil, err
		}
		if data, err = s3.GetObject(ctx, bucket, key); err != nil {
			return nil, err
		}
	} else {
		if data, err = os.ReadFile(location); err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	return ParseBundle(data, format)
}
