// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// decode deserializes the resolved tree into target, which must be a pointer
// to a struct (or map). String fields decode through hooks so durations like
// "30s" and RFC 3339 timestamps land in time.Duration and time.Time fields.
func decode(root *Value, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("error preparing config decoder: %w", err)
	}

	if err := dec.Decode(root.Interface()); err != nil {
		return fmt.Errorf("error decoding config: %w", err)
	}

	return nil
}
