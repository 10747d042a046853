package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidWallet      = errors.New("invalid wallet address")
	ErrReservedWallet     = errors.New("wallet address is reserved")
	ErrInvalidSignature   = errors.New("signature does not prove ownership of the wallet address")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, password string, email string, address string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, address common.Address) (string, error)
}

// AuthService handles registration and login. Accounts bind a username to the
// wallet address the ledger identifies the user by.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      JWTGenerator
	reserved map[common.Address]struct{}
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithReservedAddresses forbids binding accounts to the given addresses,
// such as the pool custody address.
func WithReservedAddresses(addrs ...common.Address) AuthOption {
	return func(svc *AuthService) {
		for _, a := range addrs {
			svc.reserved[a] = struct{}{}
		}
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, opts ...AuthOption) *AuthService {
	svc := &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		reserved: make(map[common.Address]struct{}),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// RegistrationMessage is the text a wallet signs (EIP-191 personal_sign) to
// prove it controls address when registering username.
func RegistrationMessage(username, email string, address common.Address) string {
	return fmt.Sprintf("gw-trust-lending registration\nusername: %s\nemail: %s\naddress: %s", username, email, address.Hex())
}

// registrationDigest applies the "\x19Ethereum Signed Message" prefix wallets
// add before hashing.
func registrationDigest(msg string) []byte {
	return ethcrypto.Keccak256([]byte(fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)))
}

// verifyOwnership checks that signature over the registration message was
// produced by the key behind address.
func verifyOwnership(username, email string, address common.Address, signature string) error {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != ethcrypto.SignatureLength {
		return ErrInvalidSignature
	}
	// Wallets emit V as 27/28, SigToPub expects 0/1.
	if sig[ethcrypto.RecoveryIDOffset] >= 27 {
		sig[ethcrypto.RecoveryIDOffset] -= 27
	}

	pub, err := ethcrypto.SigToPub(registrationDigest(RegistrationMessage(username, email, address)), sig)
	if err != nil {
		return ErrInvalidSignature
	}
	if ethcrypto.PubkeyToAddress(*pub) != address {
		return ErrInvalidSignature
	}
	return nil
}

// Register registers a new user bound to address. signature must be the
// wallet's signature over RegistrationMessage.
func (svc *AuthService) Register(ctx context.Context, username, password, email, address, signature string) error {
	if !common.IsHexAddress(address) || common.HexToAddress(address) == (common.Address{}) {
		logger.Log.Errorw("invalid wallet address", "username", username, "address", address)
		return ErrInvalidWallet
	}
	wallet := common.HexToAddress(address)
	if _, ok := svc.reserved[wallet]; ok {
		logger.Log.Errorw("reserved wallet address", "username", username, "address", wallet.Hex())
		return ErrReservedWallet
	}
	if err := verifyOwnership(username, email, wallet, signature); err != nil {
		logger.Log.Errorw("wallet ownership not proven", "username", username, "address", wallet.Hex())
		return err
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), email, wallet.Hex()); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token carrying its wallet address.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.WalletAddress())
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
