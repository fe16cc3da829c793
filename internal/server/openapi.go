package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sessionPathParams declares the {sessionID} path parameter so the
// reflector accepts operations on /api/sessions/{sessionID}/... paths.
type sessionPathParams struct {
	SessionID string `path:"sessionID"`
}

// setPathParams declares the {id} path parameter for /api/admin/sets/{id}.
type setPathParams struct {
	ID string `path:"id"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Familiada API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Familiada game board and host console.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	createSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	createSession.SetSummary("Create game session")
	createSession.SetDescription("Starts a new game from a question set. Returns the initial board state.")
	createSession.AddReqStructure(CreateSessionRequest{})
	createSession.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	createSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	createSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(createSession)

	// GET /api/sessions/{sessionID}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/state")
	getState.AddReqStructure(sessionPathParams{})
	getState.SetSummary("Get session state")
	getState.SetDescription("Returns the full board state for rendering from scratch.")
	getState.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// POST /api/sessions/{sessionID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/answer")
	postAnswer.AddReqStructure(sessionPathParams{})
	postAnswer.SetSummary("Submit a guess")
	postAnswer.SetDescription("Resolves a typed or speech-recognized guess. A match reveals the answer; a miss with an active team records an error.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// POST /api/sessions/{sessionID}/reveal
	postReveal, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/reveal")
	postReveal.AddReqStructure(sessionPathParams{})
	postReveal.SetSummary("Reveal by rank")
	postReveal.SetDescription("Reveals one answer slot by its rank. Awards points only while a team is active.")
	postReveal.AddReqStructure(RevealRequest{})
	postReveal.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReveal.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postReveal.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReveal)

	// POST /api/sessions/{sessionID}/error
	postError, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/error")
	postError.AddReqStructure(sessionPathParams{})
	postError.SetSummary("Record an error")
	postError.SetDescription("Charges the active team one error. Three errors open the steal window.")
	postError.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postError.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postError)

	// PUT /api/sessions/{sessionID}/team
	putTeam, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{sessionID}/team")
	putTeam.AddReqStructure(sessionPathParams{})
	putTeam.SetSummary("Select active team")
	putTeam.SetDescription(`Sets the active team ("a" or "b"); "none" deselects.`)
	putTeam.AddReqStructure(SelectTeamRequest{})
	putTeam.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putTeam)

	// POST /api/sessions/{sessionID}/next
	postNext, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/next")
	postNext.AddReqStructure(sessionPathParams{})
	postNext.SetSummary("Advance to next round")
	postNext.SetDescription("Starts the next round once the current one has been awarded.")
	postNext.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postNext.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postNext)

	// POST /api/sessions/{sessionID}/undo
	postUndo, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/undo")
	postUndo.AddReqStructure(sessionPathParams{})
	postUndo.SetSummary("Undo")
	postUndo.SetDescription("Restores the state before the most recent action. There is no redo.")
	postUndo.AddRespStructure(SessionStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postUndo.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postUndo)

	// PUT /api/sessions/{sessionID}/view
	putView, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{sessionID}/view")
	putView.AddReqStructure(sessionPathParams{})
	putView.SetSummary("Upload presentation state")
	putView.SetDescription("Stores the client's opaque view blob; it rides along in undo snapshots.")
	putView.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	putView.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putView)

	// GET /api/sessions/{sessionID}/grammar
	getGrammar, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/grammar")
	getGrammar.AddReqStructure(sessionPathParams{})
	getGrammar.SetSummary("Recognition grammar")
	getGrammar.SetDescription("Returns the word list speech recognition should be constrained to.")
	getGrammar.AddRespStructure(GrammarResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getGrammar)

	// GET /api/sessions/{sessionID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/events")
	getEvents.AddReqStructure(sessionPathParams{})
	getEvents.SetSummary("SSE effect stream")
	getEvents.SetDescription("Server-Sent Events stream of render/audio effect batches.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/sessions/{sessionID}/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/ws")
	getWS.AddReqStructure(sessionPathParams{})
	getWS.SetSummary("WebSocket effect stream")
	getWS.SetDescription("Upgrades to a WebSocket carrying the same effect batches as the SSE stream.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	// POST /api/admin/login
	login, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	login.SetSummary("Admin login")
	login.AddReqStructure(AdminLoginRequest{})
	login.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	login.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(login)

	// GET /api/admin/sets
	listSets, _ := r.NewOperationContext(http.MethodGet, "/api/admin/sets")
	listSets.SetSummary("List question sets")
	listSets.SetDescription("Requires admin_session cookie.")
	listSets.AddRespStructure([]QuestionSetSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	listSets.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listSets)

	// POST /api/admin/sets
	createSet, _ := r.NewOperationContext(http.MethodPost, "/api/admin/sets")
	createSet.SetSummary("Create question set")
	createSet.SetDescription("Requires admin_session cookie.")
	createSet.AddReqStructure(QuestionSetRequest{})
	createSet.AddRespStructure(QuestionSetDetail{}, openapi.WithHTTPStatus(http.StatusCreated))
	createSet.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createSet.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(createSet)

	// GET /api/admin/sets/{id}
	getSet, _ := r.NewOperationContext(http.MethodGet, "/api/admin/sets/{id}")
	getSet.AddReqStructure(setPathParams{})
	getSet.SetSummary("Get question set")
	getSet.SetDescription("Requires admin_session cookie.")
	getSet.AddRespStructure(QuestionSetDetail{}, openapi.WithHTTPStatus(http.StatusOK))
	getSet.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSet)

	// PUT /api/admin/sets/{id}
	updateSet, _ := r.NewOperationContext(http.MethodPut, "/api/admin/sets/{id}")
	updateSet.AddReqStructure(setPathParams{})
	updateSet.SetSummary("Update question set")
	updateSet.SetDescription("Requires admin_session cookie.")
	updateSet.AddReqStructure(QuestionSetRequest{})
	updateSet.AddRespStructure(QuestionSetDetail{}, openapi.WithHTTPStatus(http.StatusOK))
	updateSet.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updateSet)

	// DELETE /api/admin/sets/{id}
	deleteSet, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/sets/{id}")
	deleteSet.AddReqStructure(setPathParams{})
	deleteSet.SetSummary("Delete question set")
	deleteSet.SetDescription("Requires admin_session cookie.")
	deleteSet.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteSet.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteSet)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
