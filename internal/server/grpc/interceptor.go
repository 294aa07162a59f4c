package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/avolkov/walletkeeper/internal/common"
	pb "github.com/avolkov/walletkeeper/internal/proto"
	"github.com/avolkov/walletkeeper/internal/server/auth"
)

type ctxKey string

// UserIDKey carries the authenticated user id through the request context.
const UserIDKey ctxKey = "userID"

// protectedMethods require a valid access token in metadata.
var protectedMethods = map[string]bool{
	pb.AuthService_Logout_FullMethodName:               true,
	pb.AuthService_CheckProviderLinkage_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {
		userID, err := s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		ctx = context.WithValue(ctx, UserIDKey, userID)
	}

	return handler(ctx, req)
}

// authenticate extracts and verifies the access token from incoming metadata.
// An expired token is reported with the exact sentinel message the client's
// refresh-and-retry interceptor matches on.
func (s *GRPCServer) authenticate(ctx context.Context) (string, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return "", status.Error(codes.Unauthenticated, "invalid token")
	}

	return userID, nil
}
