package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/avolkov/walletkeeper/internal/logging"
	pb "github.com/avolkov/walletkeeper/internal/proto"
	"github.com/avolkov/walletkeeper/internal/server/users"
)

// userService is the slice of users.Service the handlers need.
type userService interface {
	Register(ctx context.Context, in users.RegistrationInput) (*users.User, *users.TokenPair, error)
	Login(ctx context.Context, email, password string) (*users.User, *users.TokenPair, error)
	ExternalLogin(ctx context.Context, providerToken, email, displayName string) (*users.User, *users.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*users.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	IsExternalProviderUser(ctx context.Context, userID string) (bool, error)
	GetByID(ctx context.Context, userID string) (*users.User, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address   string
	users     userService
	hub       *hub
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *users.Service, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		hub:       newHub(),
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
