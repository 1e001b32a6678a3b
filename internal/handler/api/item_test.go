//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
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

type ItemHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockItemCommands
	mockQueries  *queriesmock.MockItemQueries
	handler      *api.ItemHandler
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	s.handler = api.NewItemHandler(s.mockCommands, s.mockQueries)

	sharer := middleware.RequireSharer()
	s.router.POST("/items", sharer, s.handler.Create)
	s.router.GET("/items", sharer, s.handler.ListOwn)
	s.router.GET("/items/search", s.handler.Search)
	s.router.GET("/items/:id", s.handler.Get)
	s.router.PATCH("/items/:id", sharer, s.handler.Update)
	s.router.DELETE("/items/:id", s.handler.Delete)
	s.router.POST("/items/:id/comment", sharer, s.handler.AddComment)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (s *ItemHandlerTestSuite) TestCreate() {
	url := "/items"
	b := builder.NewItemBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.OwnerID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, b.OwnerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.Name, body["name"])
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: description", mutate: testutil.Field("description", nil)},
			{name: "missing field: available", mutate: testutil.Field("available", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, b.OwnerID.String())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request without sharer header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id header required")
	})

	s.Run("error: 404 Not Found on unknown owner", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.OwnerID, gomock.Any()).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, b.OwnerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *ItemHandlerTestSuite) TestUpdate() {
	b := builder.NewItemBuilder()
	url := "/items/" + b.ID.String()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns the patched item", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, b.OwnerID, gomock.Any()).
			Return(b.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, b.OwnerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request when actor is not the owner", func() {
		stranger := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, stranger, gomock.Any()).
			Return(nil, errs.ErrNotItemOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, stranger.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Only the item owner")
	})

	s.Run("error: 404 Not Found on unknown item", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, b.OwnerID, gomock.Any()).
			Return(nil, errs.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, b.OwnerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/not-a-uuid", reqBody, b.OwnerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item id")
	})
}

func (s *ItemHandlerTestSuite) TestGet() {
	b := builder.NewItemBuilder()
	url := "/items/" + b.ID.String()

	s.Run("success: returns the item with comments", func() {
		view := b.BuildViewQuery()
		view.Comments = []*queries.CommentView{{
			ID:         uuid.New(),
			ItemID:     b.ID,
			AuthorName: "Past Booker",
			Text:       "Worked fine",
			Created:    time.Now(),
		}}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body["id"])
		s.Len(body["comments"], 1)
	})

	s.Run("error: 404 Not Found on unknown item", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).
			Return(nil, errs.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

func (s *ItemHandlerTestSuite) TestListOwn() {
	ownerID := uuid.New()

	s.Run("success: returns owner items", func() {
		views := []*queries.OwnerItemView{
			builder.NewItemBuilder().WithOwnerID(ownerID).BuildOwnerViewQuery(),
			builder.NewItemBuilder().WithOwnerID(ownerID).WithName("Ladder").BuildOwnerViewQuery(),
		}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, ownerID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 400 Bad Request without sharer header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id header required")
	})
}

func (s *ItemHandlerTestSuite) TestSearch() {
	s.Run("success: passes the text through", func() {
		views := []*queries.ItemView{builder.NewItemBuilder().BuildViewQuery()}
		s.mockQueries.EXPECT().Search(gomock.Any(), "drill").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search?text=drill", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: blank text returns an empty list", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "").
			Return([]*queries.ItemView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search?text=", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *ItemHandlerTestSuite) TestAddComment() {
	b := builder.NewItemBuilder()
	authorID := uuid.New()
	url := "/items/" + b.ID.String() + "/comment"
	reqBody := map[string]any{"text": "Worked fine"}

	s.Run("success: returns 201 Created with the comment", func() {
		view := &queries.CommentView{
			ID:         uuid.New(),
			ItemID:     b.ID,
			AuthorName: "Past Booker",
			Text:       "Worked fine",
			Created:    time.Now(),
		}
		s.mockCommands.EXPECT().AddComment(gomock.Any(), b.ID, authorID, "Worked fine").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, authorID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Worked fine", body["text"])
		s.Equal("Past Booker", body["authorName"])
	})

	s.Run("error: 400 Bad Request without a finished booking", func() {
		s.mockCommands.EXPECT().AddComment(gomock.Any(), b.ID, authorID, "Worked fine").
			Return(nil, errs.ErrCommentNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, authorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "finished booking")
	})

	s.Run("error: 400 Bad Request on missing text", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, authorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ItemHandlerTestSuite) TestDelete() {
	itemID := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), itemID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/"+itemID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
