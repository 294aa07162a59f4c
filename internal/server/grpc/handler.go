package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/avolkov/walletkeeper/internal/common"
	pb "github.com/avolkov/walletkeeper/internal/proto"
	"github.com/avolkov/walletkeeper/internal/server/users"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, tokens, err := s.users.Register(ctx, users.RegistrationInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Currency:    req.Currency,
		Locale:      req.Locale,
		Country:     req.Country,
	})

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Registered", "email", user.Email)
	return &pb.AuthResponse{
		User:         userToProto(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	user, tokens, err := s.users.Login(ctx, req.Email, req.Password)

	if err != nil {
		return nil, mapError(err)
	}

	// other active sessions of this user learn about the sign-in
	s.hub.publish(user.ID, &pb.AuthStateEvent{User: userToProto(user)})

	return &pb.AuthResponse{
		User:         userToProto(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil

}

func (s *GRPCServer) ExternalLogin(ctx context.Context, req *pb.ExternalLoginRequest) (*pb.AuthResponse, error) {

	user, tokens, err := s.users.ExternalLogin(ctx, req.ProviderToken, req.Email, req.DisplayName)

	if err != nil {
		return nil, mapError(err)
	}

	s.hub.publish(user.ID, &pb.AuthStateEvent{User: userToProto(user)})

	return &pb.AuthResponse{
		User:         userToProto(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil

}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Internal, "no user in context")
	}

	if err := s.users.Logout(ctx, userID); err != nil {
		return nil, mapError(err)
	}

	// active streams of this user observe the sign-out
	s.hub.publish(userID, &pb.AuthStateEvent{User: nil})

	s.logger.Info(ctx, "Logged out", "user_id", userID)
	return &pb.LogoutResponse{}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.Refresh(ctx, req.RefreshToken)

	if err != nil {
		return nil, mapError(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) CheckProviderLinkage(ctx context.Context, req *pb.LinkageRequest) (*pb.LinkageResponse, error) {

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Internal, "no user in context")
	}

	linked, err := s.users.IsExternalProviderUser(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.LinkageResponse{ExternalProvider: linked}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// WatchAuthState streams the caller's auth state: the current profile first,
// then any change published while the stream is open.
func (s *GRPCServer) WatchAuthState(req *pb.WatchRequest, stream pb.AuthService_WatchAuthStateServer) error {

	ctx := stream.Context()

	userID, err := s.authenticate(ctx)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return mapError(err)
	}

	if err := stream.Send(&pb.AuthStateEvent{User: userToProto(user)}); err != nil {
		return err
	}

	ch, cancel := s.hub.subscribe(userID)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-ch:
			if err := stream.Send(ev); err != nil {
				return err
			}
		}
	}

}

// mapError translates service errors into the gRPC codes the client decodes
// back into the same sentinels.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrEmailInUse):
		return status.Error(codes.AlreadyExists, common.ErrEmailInUse.Error())
	case errors.Is(err, common.ErrInvalidEmail):
		return status.Error(codes.InvalidArgument, common.ErrInvalidEmail.Error())
	case errors.Is(err, common.ErrWeakPassword):
		return status.Error(codes.InvalidArgument, common.ErrWeakPassword.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func userToProto(u *users.User) *pb.UserProfile {
	if u == nil {
		return nil
	}
	return &pb.UserProfile{
		Id:                   u.ID,
		Email:                u.Email,
		DisplayName:          u.DisplayName,
		Currency:             u.Currency,
		Locale:               u.Locale,
		Country:              u.Country,
		NotificationsEnabled: u.NotificationsEnabled,
		DefaultWalletId:      u.DefaultWalletID,
		CreatedAtUnix:        u.CreatedAt.Unix(),
		UpdatedAtUnix:        u.UpdatedAt.Unix(),
	}
}
