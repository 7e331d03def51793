package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pvanham/quorum/internal/api/dto"
)

func (env *testEnv) createComment(t *testing.T, postID, userID int64, content string, replyID *int64) dto.CommentResponse {
	t.Helper()

	w := env.makeRequest(t, http.MethodPost, "/comments", dto.CreateCommentRequest{
		PostID:  postID,
		UserID:  userID,
		Content: content,
		ReplyID: replyID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create comment: %d %s", w.Code, w.Body.String())
	}

	var comment dto.CommentResponse
	parseEnvelope(t, w, &comment)
	return comment
}

func TestCreateComment(t *testing.T) {
	env := setupTestEnv(t)
	userID, _, postID := env.seedForum(t)

	comment := env.createComment(t, postID, userID, "Brock is easy.", nil)
	if comment.ID == 0 || comment.PostID != postID {
		t.Errorf("comment = %+v", comment)
	}
	if comment.ReplyID != nil {
		t.Error("root comment must have no reply id")
	}

	reply := env.createComment(t, postID, userID, "Not with Charmander.", &comment.ID)
	if reply.ReplyID == nil || *reply.ReplyID != comment.ID {
		t.Errorf("reply = %+v", reply)
	}
}

func TestListReplies(t *testing.T) {
	env := setupTestEnv(t)
	userID, _, postID := env.seedForum(t)

	c1 := env.createComment(t, postID, userID, "Brock is easy.", nil)
	c2 := env.createComment(t, postID, userID, "Not with Charmander.", &c1.ID)
	c3 := env.createComment(t, postID, userID, "Grind at the forest first.", &c2.ID)
	c4 := env.createComment(t, postID, userID, "Butterfree works too.", &c1.ID)

	w := env.makeRequest(t, http.MethodGet, "/comments/1/replies", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.CommentListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	// Depth-first order, requested comment first.
	want := []int64{c1.ID, c2.ID, c3.ID, c4.ID}
	if len(resp.Items) != len(want) {
		t.Fatalf("got %d comments, want %d", len(resp.Items), len(want))
	}
	for i, id := range want {
		if resp.Items[i].ID != id {
			t.Errorf("items[%d].ID = %d, want %d", i, resp.Items[i].ID, id)
		}
	}
}

func TestListRepliesNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.makeRequest(t, http.MethodGet, "/comments/42/replies", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
}
