// Package reqx parses one HTTP/1.1 request from a byte stream into an
// immutable, queryable Request value.
//
// Highlights
//   - Parser: request-line splitting, case-insensitive multi-valued
//     headers, Content-Length and Transfer-Encoding: chunked body
//     framing, soft byte budgets for headers and body, pluggable
//     logging/metrics hooks for truncation warnings.
//   - Request: derived views over the parsed state (content type and
//     parameters, charset, cookies, urlencoded form fields, JSON body),
//     recomputed from the raw headers/body on every call.
//   - Server: a small accept loop for demo handlers that consume a
//     parsed Request and write a buffered response.
//
// Quick start (parse):
//
//	req, err := reqx.Parse(conn)
//	if err != nil { log.Fatal(err) }
//	fmt.Println(req.Method(), req.Path(), req.QueryParam("q"))
//
// Quick start (serve):
//
//	s := &reqx.Server{Addr: ":8080"}
//	s.Handler = reqx.HandlerFunc(func(w reqx.ResponseWriter, r *reqx.Request) {
//	    w.Header().Set("Content-Type", "text/plain; charset=utf-8")
//	    w.WriteHeader(200)
//	    w.Write([]byte("hello " + r.Path()))
//	})
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package reqx
