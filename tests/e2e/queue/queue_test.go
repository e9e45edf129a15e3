//go:build e2e

package queue_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"queueline/internal/domain/user"
	"queueline/internal/handler/dto/request"
	"queueline/internal/handler/dto/response"
	"queueline/tests/common/httptest"
	"queueline/tests/e2e"
	jwtHelper "queueline/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const queuesURL = "/api/queues"

type queueSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper

	adminToken string
	userToken  string
	otherToken string
}

func TestQueueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(queueSuite))
}

func (s *queueSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *queueSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.adminToken = s.jwtHelper.CreateAndLogin(s.T(), s.Router, "admin@example.com", string(user.RoleAdmin))
	s.userToken = s.jwtHelper.CreateAndLogin(s.T(), s.Router, "user@example.com", string(user.RoleUser))
	s.otherToken = s.jwtHelper.CreateAndLogin(s.T(), s.Router, "other@example.com", string(user.RoleUser))
}

func (s *queueSuite) createQueue(token, name string, serviceTime int32) response.QueueResponse {
	s.T().Helper()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, queuesURL,
		request.CreateQueueRequest{Name: name, ServiceTime: serviceTime}, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var res response.QueueResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &res)
	return res
}

func (s *queueSuite) joinQueue(token string, queueID uuid.UUID) response.QueueResponse {
	s.T().Helper()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%s/join", queuesURL, queueID), nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var res response.QueueResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &res)
	return res
}

func (s *queueSuite) TestCreateQueue() {
	tests := []struct {
		name           string
		body           request.CreateQueueRequest
		token          func() string
		expectedStatus int
		description    string
	}{
		{
			name:           "admin creates queue",
			body:           request.CreateQueueRequest{Name: "Dentist", Description: "Walk-ins", ServiceTime: 10},
			token:          func() string { return s.adminToken },
			expectedStatus: http.StatusCreated,
			description:    "admin should be able to create a queue",
		},
		{
			name:           "default service time",
			body:           request.CreateQueueRequest{Name: "Barber"},
			token:          func() string { return s.adminToken },
			expectedStatus: http.StatusCreated,
			description:    "omitted service time should fall back to the default",
		},
		{
			name:           "non-admin rejected",
			body:           request.CreateQueueRequest{Name: "Nope"},
			token:          func() string { return s.userToken },
			expectedStatus: http.StatusForbidden,
			description:    "regular users must not create queues",
		},
		{
			name:           "unauthenticated rejected",
			body:           request.CreateQueueRequest{Name: "Nope"},
			token:          func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
			description:    "anonymous requests must be rejected",
		},
		{
			name:           "empty name rejected",
			body:           request.CreateQueueRequest{Name: ""},
			token:          func() string { return s.adminToken },
			expectedStatus: http.StatusBadRequest,
			description:    "queue name is required",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, queuesURL, tt.body, tt.token())
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var res response.QueueResponse
				err := httptest.DecodeResponseBody(t, w.Body, &res)
				require.NoError(t, err)
				require.NotEqual(t, uuid.Nil, res.ID)
				require.Len(t, res.Code, 9, "join code should be nine characters")
				require.Equal(t, tt.body.Name, res.Name)
				require.Empty(t, res.Participants)
				if tt.body.ServiceTime > 0 {
					require.Equal(t, tt.body.ServiceTime, res.ServiceTime)
				} else {
					require.Equal(t, int32(5), res.ServiceTime)
				}
			}
		})
	}
}

func (s *queueSuite) TestGetByCode() {
	s.Run("existing code is public", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Clinic", 15)
		s.joinQueue(s.userToken, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, queuesURL+"/"+created.Code, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.QueueResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, created.ID, res.ID)
		require.Len(t, res.Participants, 1)
	})

	s.Run("unknown code returns not found without side effects", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, queuesURL+"/ZZZZZZ", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM queues").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})
}

func (s *queueSuite) TestJoinQueue() {
	s.Run("participants are numbered in join order", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Bakery", 5)

		first := s.joinQueue(s.userToken, created.ID)
		require.Len(t, first.Participants, 1)
		require.Equal(t, int32(1), first.Participants[0].Number)
		require.Equal(t, 1, first.Participants[0].Position)
		require.Equal(t, "waiting", first.Participants[0].Status)
		require.NotNil(t, first.Participants[0].EstimatedStartTime)

		second := s.joinQueue(s.otherToken, created.ID)
		require.Len(t, second.Participants, 2)
		require.Equal(t, int32(2), second.Participants[1].Number)
		require.Equal(t, 2, second.Participants[1].Position)
	})

	s.Run("estimate reflects people already waiting", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Bakery", 10)

		before := time.Now()
		first := s.joinQueue(s.userToken, created.ID)
		// nobody ahead, so the first participant starts immediately
		require.WithinDuration(t, before, *first.Participants[0].EstimatedStartTime, 5*time.Second)

		second := s.joinQueue(s.otherToken, created.ID)
		est := second.Participants[1].EstimatedStartTime
		require.NotNil(t, est)
		require.WithinDuration(t, before.Add(10*time.Minute), *est, 5*time.Second)
	})

	s.Run("joining twice is rejected", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Bakery", 5)
		s.joinQueue(s.userToken, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/join", queuesURL, created.ID), nil, s.userToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("unknown queue returns not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/join", queuesURL, uuid.New()), nil, s.userToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("unauthenticated join is rejected", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Bakery", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/join", queuesURL, created.ID), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *queueSuite) TestLeaveQueue() {
	s.Run("leaving keeps other numbers and frees the slot", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Pharmacy", 5)
		s.joinQueue(s.userToken, created.ID)
		s.joinQueue(s.otherToken, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/leave", queuesURL, created.ID), nil, s.userToken)
		require.Equal(t, http.StatusOK, w.Code)

		var msg response.MessageResponse
		httptest.DecodeResponseBody(t, w.Body, &msg)
		require.Equal(t, "Left the queue", msg.Message)

		// the remaining participant keeps number 2 but moves to position 1
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, queuesURL+"/"+created.Code, nil, "")
		var res response.QueueResponse
		httptest.DecodeResponseBody(t, gw.Body, &res)
		require.Len(t, res.Participants, 1)
		require.Equal(t, int32(2), res.Participants[0].Number)
		require.Equal(t, 1, res.Participants[0].Position)
	})

	s.Run("rejoining gets the next number, not the old one", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Pharmacy", 5)
		s.joinQueue(s.userToken, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/leave", queuesURL, created.ID), nil, s.userToken)
		require.Equal(t, http.StatusOK, w.Code)

		rejoined := s.joinQueue(s.userToken, created.ID)
		require.Len(t, rejoined.Participants, 1)
		require.Equal(t, int32(2), rejoined.Participants[0].Number)
	})

	s.Run("leaving a queue not joined is rejected", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Pharmacy", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/leave", queuesURL, created.ID), nil, s.userToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("leaving an unknown queue returns not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/leave", queuesURL, uuid.New()), nil, s.userToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *queueSuite) TestListQueues() {
	s.Run("owner sees only their queues", func() {
		t := s.T()
		s.createQueue(s.adminToken, "Mine A", 5)
		s.createQueue(s.adminToken, "Mine B", 5)
		secondAdmin := s.jwtHelper.CreateAndLogin(t, s.Router, "admin2@example.com", string(user.RoleAdmin))
		s.createQueue(secondAdmin, "Theirs", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, queuesURL, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var res []response.QueueResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Len(t, res, 2)
		for _, q := range res {
			require.Contains(t, []string{"Mine A", "Mine B"}, q.Name)
		}
	})

	s.Run("user sees queues they joined", func() {
		t := s.T()
		joined := s.createQueue(s.adminToken, "Joined", 5)
		s.createQueue(s.adminToken, "Not Joined", 5)
		s.joinQueue(s.userToken, joined.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, queuesURL+"/user", nil, s.userToken)
		require.Equal(t, http.StatusOK, w.Code)

		var res []response.QueueResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Len(t, res, 1)
		require.Equal(t, joined.ID, res[0].ID)
	})

	s.Run("non-admin cannot list owned queues", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, queuesURL, nil, s.userToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *queueSuite) TestUpdateParticipantStatus() {
	patchURL := func(queueID uuid.UUID, userID uuid.UUID) string {
		return fmt.Sprintf("%s/%s/participant/%s", queuesURL, queueID, userID)
	}

	s.Run("owner updates status", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Reception", 5)
		joined := s.joinQueue(s.userToken, created.ID)
		participantID := joined.Participants[0].UserID

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL(created.ID, participantID),
			request.UpdateParticipantStatusRequest{Status: "completed"}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.QueueResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Len(t, res.Participants, 1)
		require.Equal(t, "completed", res.Participants[0].Status)
		require.Equal(t, 0, res.Participants[0].Position, "completed participants hold no place in line")
	})

	s.Run("processing recomputes waiting estimates", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Reception", 10)
		first := s.joinQueue(s.userToken, created.ID)
		s.joinQueue(s.otherToken, created.ID)
		firstID := first.Participants[0].UserID

		before := time.Now()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL(created.ID, firstID),
			request.UpdateParticipantStatusRequest{Status: "processing"}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.QueueResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Len(t, res.Participants, 2)

		for _, p := range res.Participants {
			switch p.Status {
			case "processing":
				require.Equal(t, firstID, p.UserID)
			case "waiting":
				// first in the waiting line again, so the estimate resets to roughly now
				require.NotNil(t, p.EstimatedStartTime)
				require.WithinDuration(t, before, *p.EstimatedStartTime, 5*time.Second)
			default:
				t.Fatalf("unexpected status %q", p.Status)
			}
		}
	})

	s.Run("invalid status is rejected", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Reception", 5)
		joined := s.joinQueue(s.userToken, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			patchURL(created.ID, joined.Participants[0].UserID),
			request.UpdateParticipantStatusRequest{Status: "paused"}, s.adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("non-owner admin is rejected", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Reception", 5)
		joined := s.joinQueue(s.userToken, created.ID)
		otherAdmin := s.jwtHelper.CreateAndLogin(t, s.Router, "admin2@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			patchURL(created.ID, joined.Participants[0].UserID),
			request.UpdateParticipantStatusRequest{Status: "completed"}, otherAdmin)
		require.Equal(t, http.StatusForbidden, w.Code)

		// row unchanged
		var status string
		err := s.DB.QueryRow(t.Context(),
			"SELECT status FROM queue_participants WHERE queue_id = $1 AND user_id = $2",
			created.ID, joined.Participants[0].UserID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "waiting", status)
	})

	s.Run("unknown participant returns not found", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Reception", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			patchURL(created.ID, uuid.New()),
			request.UpdateParticipantStatusRequest{Status: "completed"}, s.adminToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("non-admin is rejected", func() {
		t := s.T()
		created := s.createQueue(s.adminToken, "Reception", 5)
		joined := s.joinQueue(s.userToken, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			patchURL(created.ID, joined.Participants[0].UserID),
			request.UpdateParticipantStatusRequest{Status: "completed"}, s.userToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
