package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"go.uber.org/zap"
)

// CognitoClient is the subset of the Cognito user pool API used here,
// declared as an interface so tests can substitute a mock.
type CognitoClient interface {
	AdminInitiateAuth(
		ctx context.Context,
		params *cip.AdminInitiateAuthInput,
		optFns ...func(*cip.Options),
	) (*cip.AdminInitiateAuthOutput, error)
	GetUser(
		ctx context.Context,
		params *cip.GetUserInput,
		optFns ...func(*cip.Options),
	) (*cip.GetUserOutput, error)
}

// CognitoAuthenticator delegates login and token verification to a Cognito
// user pool. It holds no credentials of its own; every Verify is a round
// trip to AWS.
type CognitoAuthenticator struct {
	client   CognitoClient
	poolID   string
	clientID string
	logger   *zap.Logger
}

var _ Authenticator = (*CognitoAuthenticator)(nil)

// NewCognitoAuthenticator builds a Cognito client for region using the
// default AWS credential chain.
func NewCognitoAuthenticator(ctx context.Context, region, poolID, clientID string, logger *zap.Logger) (*CognitoAuthenticator, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewCognitoAuthenticatorWithClient(cip.NewFromConfig(cfg), poolID, clientID, logger), nil
}

// NewCognitoAuthenticatorWithClient uses an existing client.
func NewCognitoAuthenticatorWithClient(client CognitoClient, poolID, clientID string, logger *zap.Logger) *CognitoAuthenticator {
	return &CognitoAuthenticator{
		client:   client,
		poolID:   poolID,
		clientID: clientID,
		logger:   logger,
	}
}

// Issue runs the ADMIN_USER_PASSWORD_AUTH flow and returns the pool's access
// token unchanged.
func (a *CognitoAuthenticator) Issue(ctx context.Context, username, password string) (string, error) {
	out, err := a.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		UserPoolId: aws.String(a.poolID),
		ClientId:   aws.String(a.clientID),
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var (
			notAuthorized *types.NotAuthorizedException
			userNotFound  *types.UserNotFoundException
		)
		// Pools with PreventUserExistenceErrors off report unknown users
		// separately; both are bad credentials.
		if errors.As(err, &notAuthorized) || errors.As(err, &userNotFound) {
			a.logger.Warn("credentials rejected", zap.String("user", username))
			return "", ErrInvalidCredentials
		}
		a.logger.Error("cognito authentication failed", zap.String("user", username), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrAuthService, err)
	}

	if out.AuthenticationResult == nil || aws.ToString(out.AuthenticationResult.AccessToken) == "" {
		a.logger.Error("cognito returned no access token",
			zap.String("user", username),
			zap.String("challenge", string(out.ChallengeName)),
		)
		return "", fmt.Errorf("%w: unsupported challenge %q", ErrAuthService, out.ChallengeName)
	}

	a.logger.Info("user logged in", zap.String("user", username))
	return aws.ToString(out.AuthenticationResult.AccessToken), nil
}

// Verify asks Cognito who owns the token. Every failure, including network
// errors, is reported as ErrInvalidToken.
func (a *CognitoAuthenticator) Verify(ctx context.Context, token string) (string, error) {
	out, err := a.client.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		a.logger.Warn("token rejected", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	username := aws.ToString(out.Username)
	if username == "" {
		a.logger.Warn("token rejected", zap.String("reason", "no username"))
		return "", ErrInvalidToken
	}

	a.logger.Debug("token verified", zap.String("user", username))
	return username, nil
}
