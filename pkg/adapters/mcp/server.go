// Package mcp exposes the automaton registry and classifier as Model Context
// Protocol tools, over stdio or SSE.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/internal/presentation/tui"
	"github.com/aretw0/dfa/pkg/domain"
)

// Engine defines the interface required by the MCP server.
// *dfa.Engine satisfies it.
type Engine interface {
	Register(ctx context.Context, name, description string) (*domain.Automaton, error)
	Lookup(ctx context.Context, name string) (*domain.Automaton, error)
	Names(ctx context.Context) ([]string, error)
	ClassifyAll(ctx context.Context, a *domain.Automaton, inputs []string) ([]domain.Result, error)
	Trace(ctx context.Context, a *domain.Automaton, input string) domain.Run
}

// NamedArgs selects a registered automaton.
type NamedArgs struct {
	Name string `json:"name"`
}

// RegisterArgs are the arguments of the register tool.
type RegisterArgs struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ClassifyArgs are the arguments of the classify tool.
type ClassifyArgs struct {
	Name   string   `json:"name"`
	Inputs []string `json:"inputs"`
}

// TraceArgs are the arguments of the trace tool.
type TraceArgs struct {
	Name  string `json:"name"`
	Input string `json:"input"`
}

// RegisterResponse reports a successful registration.
type RegisterResponse struct {
	Name    string `json:"name" jsonschema_description:"Registered name"`
	States  int    `json:"states" jsonschema_description:"Number of states"`
	Symbols int    `json:"symbols" jsonschema_description:"Number of alphabet symbols"`
}

// ClassifyResponse lists verdicts in input order.
type ClassifyResponse struct {
	Results []domain.Result `json:"results" jsonschema_description:"One verdict per input: accepted, rejected or invalid_symbol"`
}

// ListResponse lists the registered automata.
type ListResponse struct {
	Names []string `json:"names"`
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("dfa-mcp", strings.TrimSpace(dfa.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("register",
		mcp.WithDescription("Compile a DFA text description and store it under a name. "+
			"Lines: start state; states; symbols (single characters); accepting states; then one '<from> <symbol> <to>' per transition. "+
			"Lines starting with '#' are comments."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name to register the automaton under")),
		mcp.WithString("description", mcp.Required(), mcp.Description("The automaton description text")),
		mcp.WithOutputSchema[RegisterResponse](),
	), mcp.NewStructuredToolHandler(s.handleRegister))

	s.mcpServer.AddTool(mcp.NewTool("classify",
		mcp.WithDescription("Classify strings against a registered automaton."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Registered automaton name")),
		mcp.WithArray("inputs", mcp.Required(), mcp.WithStringItems(), mcp.Description("Strings to classify")),
		mcp.WithOutputSchema[ClassifyResponse](),
	), mcp.NewStructuredToolHandler(s.handleClassify))

	s.mcpServer.AddTool(mcp.NewTool("trace",
		mcp.WithDescription("Classify one string and return the visited states."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Registered automaton name")),
		mcp.WithString("input", mcp.Required(), mcp.Description("String to trace")),
		mcp.WithOutputSchema[domain.Run](),
	), mcp.NewStructuredToolHandler(s.handleTrace))

	s.mcpServer.AddTool(mcp.NewTool("describe",
		mcp.WithDescription("Describe a registered automaton as Markdown, including its transition table."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Registered automaton name")),
	), mcp.NewTypedToolHandler(s.handleDescribe))

	s.mcpServer.AddTool(mcp.NewTool("graph",
		mcp.WithDescription("Render a registered automaton as a Mermaid state diagram."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Registered automaton name")),
	), mcp.NewTypedToolHandler(s.handleGraph))

	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the registered automata."),
		mcp.WithOutputSchema[ListResponse](),
	), mcp.NewStructuredToolHandler(s.handleList))
}

func (s *Server) handleRegister(ctx context.Context, request mcp.CallToolRequest, args RegisterArgs) (RegisterResponse, error) {
	a, err := s.engine.Register(ctx, args.Name, args.Description)
	if err != nil {
		return RegisterResponse{}, err
	}
	return RegisterResponse{Name: args.Name, States: a.NumStates(), Symbols: a.NumSymbols()}, nil
}

func (s *Server) handleClassify(ctx context.Context, request mcp.CallToolRequest, args ClassifyArgs) (ClassifyResponse, error) {
	a, err := s.lookup(ctx, args.Name)
	if err != nil {
		return ClassifyResponse{}, err
	}
	results, err := s.engine.ClassifyAll(ctx, a, args.Inputs)
	if err != nil {
		return ClassifyResponse{}, err
	}
	if results == nil {
		results = []domain.Result{}
	}
	return ClassifyResponse{Results: results}, nil
}

func (s *Server) handleTrace(ctx context.Context, request mcp.CallToolRequest, args TraceArgs) (domain.Run, error) {
	a, err := s.lookup(ctx, args.Name)
	if err != nil {
		return domain.Run{}, err
	}
	return s.engine.Trace(ctx, a, args.Input), nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args NamedArgs) (*mcp.CallToolResult, error) {
	a, err := s.lookup(ctx, args.Name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(tui.Describe(a)), nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest, args NamedArgs) (*mcp.CallToolResult, error) {
	a, err := s.lookup(ctx, args.Name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(a, nil)), nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args struct{}) (ListResponse, error) {
	names, err := s.engine.Names(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	if names == nil {
		names = []string{}
	}
	return ListResponse{Names: names}, nil
}

func (s *Server) lookup(ctx context.Context, name string) (*domain.Automaton, error) {
	a, err := s.engine.Lookup(ctx, name)
	if errors.Is(err, domain.ErrAutomatonNotFound) {
		return nil, fmt.Errorf("automaton %q is not registered", name)
	}
	return a, err
}

func (s *Server) registerResources() {
	// EXPOSE: dfa://automata
	s.mcpServer.AddResource(mcp.NewResource("dfa://automata", "Registered automata",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.engine.Names(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list automata: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "dfa://automata",
				MIMEType: "text/plain",
				Text:     strings.Join(names, "\n"),
			},
		}, nil
	})
}
