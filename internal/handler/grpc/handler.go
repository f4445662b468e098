// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the reference sync server.
//
// The sync service has a single unary method, Exchange. Its messages are
// [codec.Frame] values carrying payloads already encoded by one of the sync
// codecs, so the server must be created with
// grpc.ForceServerCodec(codec.FrameCodec{}). The collection and the payload
// content type travel in request metadata.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/models"
)

// SyncServer is the server API of the sync service.
type SyncServer interface {
	Exchange(ctx context.Context, in *codec.Frame) (*codec.Frame, error)
}

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register adds the sync service to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	registrar.RegisterService(&syncServiceDesc, h)
}

// Exchange decodes the request frame with the codec named in metadata, runs
// the exchange and answers in the same encoding. An up to date client gets an
// empty frame and the not-modified status header.
func (h *Handler) Exchange(ctx context.Context, in *codec.Frame) (*codec.Frame, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	collection := models.Collection(firstValue(md, codec.MetadataCollection))
	log := logger.FromContext(ctx).WithCollection(string(collection))

	if !collection.Valid() {
		log.Warn().Str("func", "*Handler.Exchange").Msg("unknown collection requested")
		return nil, status.Errorf(codes.NotFound, "unknown collection %q", collection)
	}

	wire, err := codec.ForContentType(firstValue(md, codec.MetadataContentType))
	if err != nil {
		log.Err(err).Str("func", "*Handler.Exchange").Msg("unsupported content type")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	req, err := wire.DecodeRequest(in.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Exchange").Msg("malformed sync request")
		return nil, status.Error(codeFromError(err), err.Error())
	}

	snapshot, notModified, err := h.services.SyncService.Exchange(ctx, collection, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Exchange").Msg("sync exchange failed")
		return nil, status.Error(codeFromError(err), err.Error())
	}
	if notModified {
		if err = grpc.SetHeader(ctx, metadata.Pairs(codec.MetadataStatus, codec.StatusNotModified)); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &codec.Frame{}, nil
	}

	out, err := wire.EncodeSnapshot(snapshot)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Exchange").Msg("error encoding snapshot")
		return nil, status.Error(codes.Internal, "error encoding snapshot")
	}

	return &codec.Frame{Body: out}, nil
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

var syncServiceDesc = grpc.ServiceDesc{
	ServiceName: codec.GRPCServiceName,
	HandlerType: (*SyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Exchange",
			Handler:    exchangeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "podsync/v1/sync",
}

func exchangeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(codec.Frame)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).Exchange(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: codec.GRPCExchangeMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).Exchange(ctx, req.(*codec.Frame))
	}
	return interceptor(ctx, in, info, handler)
}
