package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/avolkov/walletkeeper/internal/client/models"
	"github.com/avolkov/walletkeeper/internal/common"
	"github.com/avolkov/walletkeeper/internal/logging"
	pb "github.com/avolkov/walletkeeper/internal/proto"
)

// ExternalFlowResult is the outcome of the external provider's interactive
// sign-in (token plus the profile bits the provider shared).
type ExternalFlowResult struct {
	ProviderToken string
	Email         string
	DisplayName   string
}

// ExternalFlow runs the provider's interactive sign-in. A (nil, nil) result
// means the user cancelled the flow.
type ExternalFlow func(ctx context.Context) (*ExternalFlowResult, error)

// GRPCClient talks to the WalletKeeper auth server. It implements the
// manager's AuthProvider contract.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	log         logging.Logger
	flow        ExternalFlow

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// Option configures a GRPCClient.
type Option func(*GRPCClient)

// WithExternalFlow installs the interactive external-provider sign-in flow.
func WithExternalFlow(flow ExternalFlow) Option {
	return func(c *GRPCClient) { c.flow = flow }
}

// NewGRPCClient dials the auth server and returns a ready client.
func NewGRPCClient(endpointURL string, log logging.Logger, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, log: log}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) init() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

// accessTokenInterceptor attaches the access token to every unary call and,
// on an expired-token rejection, rotates the token pair once and retries.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	ctx = withAccessToken(ctx, resp.AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// Register creates an account and signs the new user in.
func (s *GRPCClient) Register(ctx context.Context, input models.RegistrationInput) (*models.UserProfile, error) {
	req := &pb.RegisterRequest{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Currency:    input.Currency,
		Locale:      input.Locale,
		Country:     input.Country,
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return userFromProto(resp.User), nil
}

// Login authenticates with email and password and stores the token pair.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return userFromProto(resp.User), nil
}

// ExternalLogin runs the interactive provider flow and exchanges its token
// with the server. Returns (nil, nil) when the user cancelled the flow or no
// flow is installed.
func (s *GRPCClient) ExternalLogin(ctx context.Context) (*models.UserProfile, error) {
	if s.flow == nil {
		return nil, nil
	}

	result, err := s.flow(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	resp, err := s.client.ExternalLogin(ctx, &pb.ExternalLoginRequest{
		ProviderToken: result.ProviderToken,
		Email:         result.Email,
		DisplayName:   result.DisplayName,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return userFromProto(resp.User), nil
}

// Logout revokes the remote session and drops the stored tokens. Local
// tokens are dropped even when the remote call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, err := s.client.Logout(ctx, &pb.LogoutRequest{})
	s.setTokens("", "")
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// IsExternalProviderUser asks the server whether the current account came
// through the external provider.
func (s *GRPCClient) IsExternalProviderUser(ctx context.Context) (bool, error) {
	resp, err := s.client.CheckProviderLinkage(ctx, &pb.LinkageRequest{})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.ExternalProvider, nil
}

// OnAuthStateChanged opens the server's auth-state stream and feeds each
// event to cb; a nil user means signed out. The returned function tears the
// stream down.
func (s *GRPCClient) OnAuthStateChanged(cb func(user *models.UserProfile)) (func(), error) {
	access, _ := s.tokens()
	ctx, cancel := context.WithCancel(context.Background())
	ctx = withAccessToken(ctx, access)

	stream, err := s.client.WatchAuthState(ctx, &pb.WatchRequest{})
	if err != nil {
		cancel()
		return nil, s.mapError(err)
	}

	go func() {
		for {
			ev, err := stream.Recv()
			if err != nil {
				if ctx.Err() == nil {
					s.log.Warn(ctx, "auth-state stream closed", "error", err)
				}
				return
			}
			cb(userFromProto(ev.User))
		}
	}()

	return cancel, nil
}

// Ping checks server liveness.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Close releases the underlying connection.
func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError translates gRPC status codes into the closed sentinel set. Raw
// provider codes never propagate past this point.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.AlreadyExists:
		return common.ErrEmailInUse
	case codes.InvalidArgument:
		switch st.Message() {
		case common.ErrWeakPassword.Error():
			return common.ErrWeakPassword
		case common.ErrInvalidEmail.Error():
			return common.ErrInvalidEmail
		}
		return fmt.Errorf("rpc error: %w", err)
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromProto(u *pb.UserProfile) *models.UserProfile {
	if u == nil {
		return nil
	}
	return &models.UserProfile{
		ID:          u.Id,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Currency:    u.Currency,
		Locale:      u.Locale,
		Country:     u.Country,
		Preferences: models.Preferences{
			NotificationsEnabled: u.NotificationsEnabled,
			DefaultWalletID:      u.DefaultWalletId,
		},
		CreatedAt: time.Unix(u.CreatedAtUnix, 0).UTC(),
		UpdatedAt: time.Unix(u.UpdatedAtUnix, 0).UTC(),
	}
}
