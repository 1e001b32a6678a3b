//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/users", s.handler.Create)
	s.router.GET("/users", s.handler.List)
	s.router.GET("/users/:id", s.handler.Get)
	s.router.PATCH("/users/:id", s.handler.Update)
	s.router.DELETE("/users/:id", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"
	b := builder.NewUserBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.Email, body["email"])
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict when email is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmailConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already in use")
	})

	s.Run("error: 400 Bad Request on malformed email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "garbage"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	b := builder.NewUserBuilder()
	url := "/users/" + b.ID.String()

	s.Run("success: returns the user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(b.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body["id"])
	})

	s.Run("error: 404 Not Found on unknown user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: returns every user", func() {
		views := []*queries.UserView{
			builder.NewUserBuilder().BuildViewQuery(),
			builder.NewUserBuilder().WithEmail("second@example.com").BuildViewQuery(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request while the user owns items", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).
			Return(errs.ErrUserHasItems).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "User still owns items")
	})
}
