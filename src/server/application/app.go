package application

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/cockroachdb/errors"
	usergateway "github.com/dev334/hemo-be/src/server/internal/user/gateway"
	userstorage "github.com/dev334/hemo-be/src/server/internal/user/storage"
	userusecase "github.com/dev334/hemo-be/src/server/internal/user/usecase"
	verificationstorage "github.com/dev334/hemo-be/src/server/internal/verification/storage"
	"github.com/dev334/hemo-be/src/shared/config"
	dynamolib "github.com/dev334/hemo-be/src/shared/lib/dynamo"
	"github.com/dev334/hemo-be/src/shared/lib/mailer"
	"github.com/dev334/hemo-be/src/shared/lib/rabbitmq"
	"github.com/dev334/hemo-be/src/shared/lib/token"
	"github.com/guregu/dynamo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

const healthCheckTimeout = 5 * time.Second

type App struct {
	echo *echo.Echo
	port string
}

type Config struct {
	DynamoConfig       config.Dynamo
	RabbitMQURL        string
	RabbitMQQueueName  string
	Mailer             mailer.Mailer
	TokenSecret        string
	TokenTTL           time.Duration
	PublicURL          string
	CORSAllowedOrigins []string
	Port               string
	Log                bool
}

func NewApp(config Config) App {
	e := echo.New()

	if config.Log {
		e.Use(middleware.Logger())
	}

	corsMiddleware := makeCorsMiddleware(config)

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		params := func() (string, echo.HandlerFunc, echo.MiddlewareFunc) {
			return path, handlerFunc, corsMiddleware
		}

		e.OPTIONS(params())

		switch method {
		case GET:
			e.GET(params())
		case POST:
			e.POST(params())
		case PUT:
			e.PUT(params())
		case DELETE:
			e.DELETE(params())
		default:
			panic("unhandled http method!")
		}
	}

	dynamoDB := makeDynamoDB(config.DynamoConfig)
	publisher := makeRabbitMQPublisher(config)
	userUsecase := makeUserUsecase(config, dynamoDB, publisher)
	userGateway := usergateway.NewGateway(userUsecase)

	// the health check doubles as the mail relay self test
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		ctx, cancel := contextWithTimeout(c, healthCheckTimeout)
		defer cancel()

		if err := config.Mailer.Ping(ctx); err != nil {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	})

	// account routes
	handleRoute(POST, "/register", userGateway.Register)
	handleRoute(POST, "/login", userGateway.Login)
	handleRoute(GET, "/verify/:token", func(c echo.Context) error {
		tokenString := c.Param("token")
		return userGateway.Verify(c, tokenString)
	})

	// profile routes
	handleRoute(POST, "/profile", userGateway.CreateProfile)
	handleRoute(PUT, "/profile", userGateway.EditProfile)
	handleRoute(PUT, "/password", userGateway.ChangePassword)

	// user routes
	handleRoute(GET, "/users", userGateway.ListUsers)
	handleRoute(GET, "/users/:id", func(c echo.Context) error {
		userID := c.Param("id")
		return userGateway.GetUser(c, userID)
	})
	handleRoute(DELETE, "/users/:id", func(c echo.Context) error {
		userID := c.Param("id")
		return userGateway.DeleteAccount(c, userID)
	})

	return App{
		echo: e,
		port: config.Port,
	}
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}

func makeRabbitMQPublisher(config Config) rabbitmq.Publisher {
	publisher, err := rabbitmq.NewQueuePublisher(config.RabbitMQURL, config.RabbitMQQueueName)
	if err != nil {
		panic(errors.Wrap(err, "Failed to create rabbitMQ publisher"))
	}

	return publisher
}

func makeDynamoDB(dynamoConfig config.Dynamo) dynamolib.DynamoDBWrapper {
	dbSession := session.Must(session.NewSession())

	var dbConfig *aws.Config

	switch t := dynamoConfig.(type) {
	case config.ProdDynamo:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region)

	case config.LocalDynamo:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region).
			WithEndpoint(t.Host)

	default:
		panic("Unexpected dynamo config type")
	}

	db := dynamo.New(dbSession, dbConfig)
	return dynamolib.NewDynamoDBWrapper(db)
}

func makeUserUsecase(config Config, dynamoDB dynamolib.DynamoDBWrapper, publisher rabbitmq.Publisher) userusecase.Usecase {
	userDB := userstorage.NewDB(dynamoDB)
	verificationDB := verificationstorage.NewDB(dynamoDB)

	signer := token.HS256Signer{
		Secret: config.TokenSecret,
		TTL:    config.TokenTTL,
	}

	return userusecase.NewUsecase(
		userDB,
		verificationDB,
		config.Mailer,
		signer,
		publisher,
		config.PublicURL,
	)
}

func contextWithTimeout(c echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), timeout)
}

func makeCorsMiddleware(config Config) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	})
}
