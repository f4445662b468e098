// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

type grpcSyncTransport struct {
	conn           *grpc.ClientConn
	requestTimeout time.Duration
	logger         *logger.Logger
}

// NewGRPCSyncTransport returns a [SyncTransport] calling the Exchange method
// on adapterCfg.GRPCAddress. Extra dial options are appended to the defaults.
func NewGRPCSyncTransport(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (SyncTransport, error) {
	if adapterCfg.GRPCAddress == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(codec.FrameCodec{})),
	}, opts...)

	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating grpc client: %w", err)
	}

	return &grpcSyncTransport{conn: conn, requestTimeout: adapterCfg.RequestTimeout, logger: logger}, nil
}

func (g *grpcSyncTransport) Exchange(ctx context.Context, collection models.Collection, contentType string, body []byte) (models.Exchange, error) {
	log := logger.FromContext(ctx)

	if g.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.requestTimeout)
		defer cancel()
	}

	pairs := []string{
		codec.MetadataCollection, string(collection),
		codec.MetadataContentType, contentType,
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		pairs = append(pairs, utils.TraceIDMetadata, traceID)
	}
	ctx = metadata.AppendToOutgoingContext(ctx, pairs...)

	var header metadata.MD
	out := new(codec.Frame)
	err := g.conn.Invoke(ctx, codec.GRPCExchangeMethod, &codec.Frame{Body: body}, out, grpc.Header(&header))
	if err != nil {
		log.Err(err).
			Str("func", "grpcSyncTransport.Exchange").
			Str("collection", string(collection)).
			Msg("sync call failed")
		return models.Exchange{}, mapGRPCError(err)
	}

	if values := header.Get(codec.MetadataStatus); len(values) > 0 && values[0] == codec.StatusNotModified {
		return models.Exchange{NotModified: true}, nil
	}

	return models.Exchange{Body: out.Body}, nil
}

func (g *grpcSyncTransport) Close() error {
	return g.conn.Close()
}
