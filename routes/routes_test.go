package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motoconnect-api/config"
	"motoconnect-api/controllers"
	"motoconnect-api/models"
	"motoconnect-api/services"
	"motoconnect-api/utils"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	router      *gin.Engine
	users       *memUserStore
	profiles    *memProfileStore
	posts       *memPostStore
	motorcycles *memMotorcycleStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:       newMemUserStore(),
		profiles:    newMemProfileStore(),
		posts:       newMemPostStore(),
		motorcycles: newMemMotorcycleStore(),
	}

	// SMTP host left empty, so the welcome mail path is a no-op.
	emailService := services.NewEmailService(&config.Config{})
	githubService := services.NewGithubService(&config.Config{})

	authController := controllers.NewAuthController(env.users, testJWTSecret, emailService)
	profileController := controllers.NewProfileController(env.profiles, env.users, githubService)
	postController := controllers.NewPostController(env.posts, env.users)
	motorcycleController := controllers.NewMotorcycleController(env.motorcycles, env.users)

	env.router = gin.New()
	Register(env.router, testJWTSecret, authController, profileController, postController, motorcycleController)
	return env
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (env *testEnv) register(t *testing.T, name, email string) (token, userID string) {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/users", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	resp := decodeJSON[controllers.AuthResponse](t, w)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.User.ID)
	return resp.Token, resp.User.ID
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeJSON[utils.ErrorResponse](t, w)
	return resp.Error
}

func TestRootHealthRoute(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API Running", w.Body.String())
}

func TestRegisterLoginAndGetAuthUser(t *testing.T) {
	env := newTestEnv(t)

	token, userID := env.register(t, "Ada", "ada@example.com")

	// Duplicate registration is rejected.
	w := env.do(t, http.MethodPost, "/api/users", "", gin.H{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the right password.
	w = env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "ada@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	login := decodeJSON[controllers.AuthResponse](t, w)
	assert.Equal(t, userID, login.User.ID)

	// Wrong password.
	w = env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", errorMessage(t, w))

	// Token resolves back to the user, without the password hash.
	w = env.do(t, http.MethodGet, "/api/auth", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeJSON[models.User](t, w)
	assert.Equal(t, userID, user.ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", "", gin.H{
		"name":     "Ada",
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", errorMessage(t, w))

	w = env.do(t, http.MethodGet, "/api/posts", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", errorMessage(t, w))
}

func TestPostLifecycle(t *testing.T) {
	env := newTestEnv(t)
	tokenA, userA := env.register(t, "Ada", "ada@example.com")
	tokenB, _ := env.register(t, "Bob", "bob@example.com")

	// Create
	w := env.do(t, http.MethodPost, "/api/posts", tokenA, gin.H{"text": "first ride of the season"})
	require.Equal(t, http.StatusCreated, w.Code)
	post := decodeJSON[models.Post](t, w)
	assert.Equal(t, userA, post.UserID)
	assert.Equal(t, "Ada", post.Name)
	assert.NotEmpty(t, post.ID)

	// List newest first
	w = env.do(t, http.MethodPost, "/api/posts", tokenB, gin.H{"text": "second post"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/posts", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodeJSON[[]models.Post](t, w)
	require.Len(t, posts, 2)
	assert.Equal(t, "second post", posts[0].Text)

	// Fetch one
	w = env.do(t, http.MethodGet, "/api/posts/"+post.ID, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/posts/missing", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "There is no post found with id", errorMessage(t, w))

	// Only the author may delete.
	w = env.do(t, http.MethodDelete, "/api/posts/"+post.ID, tokenB, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User not authorized to delete this post", errorMessage(t, w))

	w = env.do(t, http.MethodGet, "/api/posts/"+post.ID, tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code, "post survives the rejected delete")

	w = env.do(t, http.MethodDelete, "/api/posts/"+post.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post has been deleted", decodeJSON[map[string]string](t, w)["message"])

	w = env.do(t, http.MethodGet, "/api/posts/"+post.ID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostLikeToggle(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.register(t, "Ada", "ada@example.com")
	tokenB, userB := env.register(t, "Bob", "bob@example.com")

	w := env.do(t, http.MethodPost, "/api/posts", tokenA, gin.H{"text": "like me"})
	require.Equal(t, http.StatusCreated, w.Code)
	post := decodeJSON[models.Post](t, w)

	w = env.do(t, http.MethodPut, "/api/posts/like/"+post.ID, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	likes := decodeJSON[models.ReactionList](t, w)
	require.Len(t, likes, 1)
	assert.Equal(t, userB, likes[0].User)

	// Double like is rejected and leaves the list untouched.
	w = env.do(t, http.MethodPut, "/api/posts/like/"+post.ID, tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already liked this post", errorMessage(t, w))

	w = env.do(t, http.MethodPut, "/api/posts/unlike/"+post.ID, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	likes = decodeJSON[models.ReactionList](t, w)
	assert.Empty(t, likes)

	w = env.do(t, http.MethodPut, "/api/posts/unlike/"+post.ID, tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User has not liked post yet", errorMessage(t, w))
}

func TestPostComments(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.register(t, "Ada", "ada@example.com")
	tokenB, userB := env.register(t, "Bob", "bob@example.com")

	w := env.do(t, http.MethodPost, "/api/posts", tokenA, gin.H{"text": "comment on me"})
	require.Equal(t, http.StatusCreated, w.Code)
	post := decodeJSON[models.Post](t, w)

	w = env.do(t, http.MethodPost, "/api/posts/comment/"+post.ID, tokenB, gin.H{"text": "great photo"})
	require.Equal(t, http.StatusCreated, w.Code)
	comments := decodeJSON[models.CommentList](t, w)
	require.Len(t, comments, 1)
	assert.Equal(t, userB, comments[0].User)
	assert.Equal(t, "Bob", comments[0].Name)
	commentID := comments[0].ID

	// Someone else cannot delete Bob's comment.
	w = env.do(t, http.MethodDelete, "/api/posts/comment/"+post.ID+"/"+commentID, tokenA, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown comment id.
	w = env.do(t, http.MethodDelete, "/api/posts/comment/"+post.ID+"/missing", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Comment does not exist", errorMessage(t, w))

	// The author can.
	w = env.do(t, http.MethodDelete, "/api/posts/comment/"+post.ID+"/"+commentID, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments = decodeJSON[models.CommentList](t, w)
	assert.Empty(t, comments)
}

func TestMotorcycleLoveLifecycle(t *testing.T) {
	env := newTestEnv(t)
	tokenA, userA := env.register(t, "Ada", "ada@example.com")
	tokenB, userB := env.register(t, "Bob", "bob@example.com")

	w := env.do(t, http.MethodPost, "/api/motorcycles", tokenA, gin.H{
		"make":   "Honda",
		"model":  "CB750",
		"year":   1978,
		"price":  5200.0,
		"type":   "Classic",
		"status": "For Sale",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	moto := decodeJSON[models.Motorcycle](t, w)
	assert.Equal(t, userA, moto.UserID)

	// B loves it.
	w = env.do(t, http.MethodPut, "/api/motorcycles/love/"+moto.ID, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	loves := decodeJSON[models.ReactionList](t, w)
	require.Len(t, loves, 1)
	assert.Equal(t, userB, loves[0].User)

	// Double love rejected.
	w = env.do(t, http.MethodPut, "/api/motorcycles/love/"+moto.ID, tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already loved this motorcycle", errorMessage(t, w))

	// Unlove empties the list; a second unlove is rejected.
	w = env.do(t, http.MethodPut, "/api/motorcycles/unlove/"+moto.ID, tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[models.ReactionList](t, w))

	w = env.do(t, http.MethodPut, "/api/motorcycles/unlove/"+moto.ID, tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User has not loved motorcycle yet", errorMessage(t, w))

	// B cannot delete A's motorcycle.
	w = env.do(t, http.MethodDelete, "/api/motorcycles/"+moto.ID, tokenB, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/motorcycles/"+moto.ID, tokenB, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A can.
	w = env.do(t, http.MethodDelete, "/api/motorcycles/"+moto.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/motorcycles/"+moto.ID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Motorcycle not found", errorMessage(t, w))
}

func TestMotorcycleMaintenanceOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.register(t, "Ada", "ada@example.com")
	tokenB, _ := env.register(t, "Bob", "bob@example.com")

	w := env.do(t, http.MethodPost, "/api/motorcycles", tokenA, gin.H{
		"make":   "Yamaha",
		"model":  "XSR700",
		"year":   2022,
		"price":  8900.0,
		"type":   "Retro",
		"status": "Not For Sale",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	moto := decodeJSON[models.Motorcycle](t, w)

	record := gin.H{"service_type": "Routine service", "date": "2026-04-10", "description": "oil change"}

	w = env.do(t, http.MethodPut, "/api/motorcycles/maintenance/"+moto.ID, tokenB, record)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPut, "/api/motorcycles/maintenance/"+moto.ID, tokenA, record)
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeJSON[models.MaintenanceList](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, "oil change", history[0].Description)
}

func TestProfileUpsertMerge(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.register(t, "Ada", "ada@example.com")

	// No profile yet.
	w := env.do(t, http.MethodGet, "/api/profile/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "There is no profile for this user", errorMessage(t, w))

	// First upsert creates.
	w = env.do(t, http.MethodPost, "/api/profile", token, gin.H{
		"status":   "Rider",
		"skills":   "Road, Touring",
		"location": "Budapest",
		"bio":      "weekend tourer",
		"youtube":  "https://youtube.com/ada",
	})
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeJSON[models.Profile](t, w)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, models.StringSlice{"Road", "Touring"}, profile.Skills)
	assert.Equal(t, "https://youtube.com/ada", profile.Social["youtube"])

	// Second upsert: omitted scalars survive, omitted social links do not.
	w = env.do(t, http.MethodPost, "/api/profile", token, gin.H{
		"status": "Mechanic",
		"skills": "Vintage",
	})
	require.Equal(t, http.StatusOK, w.Code)
	merged := decodeJSON[models.Profile](t, w)
	assert.Equal(t, profile.ID, merged.ID)
	assert.Equal(t, "Budapest", merged.Location)
	assert.Equal(t, "weekend tourer", merged.Bio)
	assert.Equal(t, "Mechanic", merged.Status)
	assert.Empty(t, merged.Social)

	// Public read by user id.
	w = env.do(t, http.MethodGet, "/api/profile/user/"+userID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/profile/user/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Profile not found", errorMessage(t, w))
}

func TestProfileExperienceAndEducation(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "Ada", "ada@example.com")

	w := env.do(t, http.MethodPost, "/api/profile", token, gin.H{"status": "Rider", "skills": "Road"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Mechanic",
		"company": "Garage A",
		"from":    "2019-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	withExp := decodeJSON[models.Profile](t, w)
	require.Len(t, withExp.Experience, 1)
	expID := withExp.Experience[0].ID

	w = env.do(t, http.MethodDelete, "/api/profile/experience/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Experience not found", errorMessage(t, w))

	w = env.do(t, http.MethodDelete, "/api/profile/experience/"+expID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[models.Profile](t, w).Experience)

	w = env.do(t, http.MethodPut, "/api/profile/education", token, gin.H{
		"school":       "Tech School",
		"degree":       "BSc",
		"fieldofstudy": "Engineering",
		"from":         "2015-09-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	withEdu := decodeJSON[models.Profile](t, w)
	require.Len(t, withEdu.Education, 1)

	w = env.do(t, http.MethodDelete, "/api/profile/education/"+withEdu.Education[0].ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON[models.Profile](t, w).Education)
}

// Deleting the account removes the profile and the user, but posts and
// motorcycles are left behind.
func TestDeleteProfileAndUserLeavesContent(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.register(t, "Ada", "ada@example.com")
	tokenB, _ := env.register(t, "Bob", "bob@example.com")

	w := env.do(t, http.MethodPost, "/api/profile", token, gin.H{"status": "Rider", "skills": "Road"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/posts", token, gin.H{"text": "soon orphaned"})
	require.Equal(t, http.StatusCreated, w.Code)
	post := decodeJSON[models.Post](t, w)

	w = env.do(t, http.MethodDelete, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted", decodeJSON[map[string]string](t, w)["message"])

	_, err := env.users.FindByID(userID)
	assert.Error(t, err)
	_, err = env.profiles.FindByUser(userID)
	assert.Error(t, err)

	// The orphaned post is still readable by others.
	w = env.do(t, http.MethodGet, "/api/posts/"+post.ID, tokenB, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
