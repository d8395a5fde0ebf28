//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"paradise-inn/internal/handler/api"
	resdto "paradise-inn/internal/handler/dto/response"
	"paradise-inn/internal/usecase"
	"paradise-inn/tests/common/builder"
	"paradise-inn/tests/common/httptest"
	usecasemock "paradise-inn/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockRoom *usecasemock.MockRoomUsecase
	handler  *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoom = usecasemock.NewMockRoomUsecase(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockRoom)

	s.router.POST("/rooms", s.handler.Add)
	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/types", s.handler.Types)
	s.router.GET("/rooms/available", s.handler.Available)
	s.router.GET("/rooms/available-by-date-type", s.handler.AvailableByDatesAndType)
	s.router.GET("/rooms/:roomId", s.handler.GetByID)
	s.router.DELETE("/rooms/:roomId", s.handler.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// performMultipart submits a room form; a nil photo omits the file part.
func (s *RoomHandlerTestSuite) performMultipart(fields map[string]string, photo []byte) *nethttptest.ResponseRecorder {
	s.T().Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}
	if photo != nil {
		part, err := w.CreateFormFile("photo", "room.jpg")
		s.Require().NoError(err)
		_, err = part.Write(photo)
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())

	req := nethttptest.NewRequest(http.MethodPost, "/rooms", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func roomFormFields() map[string]string {
	return map[string]string{
		"roomType":        "Deluxe Suite",
		"roomPrice":       "199.99",
		"roomDescription": "Sea view, king bed",
	}
}

func (s *RoomHandlerTestSuite) TestAdd() {
	photo := []byte("jpeg-bytes")

	s.Run("success: uploads the photo and returns the room", func() {
		returnRoom := builder.NewRoomBuilder().BuildView()
		s.mockRoom.EXPECT().
			Add(gomock.Any(), gomock.AssignableToTypeOf(usecase.AddRoomInput{})).
			DoAndReturn(func(_ any, in usecase.AddRoomInput) (*usecase.RoomView, error) {
				s.Equal(photo, in.Photo)
				s.Equal("Deluxe Suite", in.RoomType)
				s.InDelta(199.99, in.Price, 0.001)
				return returnRoom, nil
			}).Times(1)

		rec := s.performMultipart(roomFormFields(), photo)

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Room)
		s.Equal(returnRoom.ImageURL, response.Room.ImageURL)
	})

	s.Run("error: 400 without a photo", func() {
		rec := s.performMultipart(roomFormFields(), nil)
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest,
			"Please provide values for all fields (photo, roomType, roomPrice, roomDescription)")
	})

	s.Run("error: 400 when a form field is missing", func() {
		fields := roomFormFields()
		delete(fields, "roomType")

		rec := s.performMultipart(fields, photo)
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest,
			"Please provide values for all fields (photo, roomType, roomPrice, roomDescription)")
	})
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: returns all rooms", func() {
		views := []usecase.RoomView{
			*builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.ID = 2 }).BuildView(),
			*builder.NewRoomBuilder().BuildView(),
		}
		s.mockRoom.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.RoomList, 2)
		s.Equal(int64(2), response.RoomList[0].ID)
	})
}

func (s *RoomHandlerTestSuite) TestTypes() {
	s.Run("success: returns distinct types", func() {
		s.mockRoom.EXPECT().Types(gomock.Any()).
			Return([]string{"Deluxe Suite", "Standard"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/types", nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"Deluxe Suite", "Standard"}, response.RoomTypes)
	})
}

func (s *RoomHandlerTestSuite) TestGetByID() {
	s.Run("success", func() {
		returnRoom := builder.NewRoomBuilder().BuildView()
		s.mockRoom.EXPECT().GetByID(gomock.Any(), int64(1)).Return(returnRoom, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/1", nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Room)
		s.Equal(returnRoom.RoomType, response.Room.RoomType)
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockRoom.EXPECT().GetByID(gomock.Any(), int64(99)).
			Return(nil, usecase.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/99", nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/abc", nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest, "Invalid roomId")
	})
}

func (s *RoomHandlerTestSuite) TestAvailableByDatesAndType() {
	baseURL := "/rooms/available-by-date-type"

	s.Run("success: forwards parsed dates and the type filter", func() {
		views := []usecase.RoomView{*builder.NewRoomBuilder().BuildView()}
		s.mockRoom.EXPECT().
			AvailableByDatesAndType(gomock.Any(),
				time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2030, 6, 14, 0, 0, 0, 0, time.UTC),
				"Deluxe").
			Return(views, nil).Times(1)

		url := baseURL + "?checkInDate=2030-06-10&checkOutDate=2030-06-14&roomType=Deluxe"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.RoomList, 1)
	})

	s.Run("error: 400 when a query parameter is missing", func() {
		url := baseURL + "?checkInDate=2030-06-10&roomType=Deluxe"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest,
			"Please provide values for all fields (checkInDate, checkOutDate, roomType)")
	})

	s.Run("error: 400 on unparseable dates", func() {
		url := baseURL + "?checkInDate=10/06/2030&checkOutDate=2030-06-14&roomType=Deluxe"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest, "Invalid checkInDate")

		url = baseURL + "?checkInDate=2030-06-10&checkOutDate=14/06/2030&roomType=Deluxe"
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusBadRequest, "Invalid checkOutDate")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockRoom.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/1", nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Successful", response.Message)
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockRoom.EXPECT().Delete(gomock.Any(), int64(99)).
			Return(usecase.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/99", nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 500 on repository failure", func() {
		s.mockRoom.EXPECT().Delete(gomock.Any(), int64(1)).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/1", nil, "")
		httptest.AssertEnvelopeError(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
