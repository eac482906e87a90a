// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InvokeRequest is one invocation descriptor submitted over HTTP
type InvokeRequest struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
}

func (s *Server) newRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/invoke", s.invoke)
	r.GET("/healthz", s.healthz)
	r.GET("/status", s.getStatus)

	return r
}

func (s *Server) invoke(c *gin.Context) {
	req := new(InvokeRequest)
	if err := c.ShouldBind(req); err != nil {
		c.String(http.StatusBadRequest, "cannot parse invocation")
		return
	}
	stub, err := s.newStub(req.Operation, req.Args)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	resp := s.handler.Invoke(stub)
	if !resp.OK {
		c.Data(http.StatusBadRequest, "application/json", resp.Payload)
		return
	}
	c.Data(http.StatusOK, "application/json", resp.Payload)
}

func (s *Server) healthz(c *gin.Context) {
	stub, err := s.newStub("ping", nil)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	resp := s.handler.Invoke(stub)
	if !resp.OK {
		c.Data(http.StatusInternalServerError, "application/json", resp.Payload)
		return
	}
	c.Data(http.StatusOK, "application/json", resp.Payload)
}

func (s *Server) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.GetStatus())
}
