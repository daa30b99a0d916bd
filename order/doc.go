// Package order implements the custom order form endpoint.
//
// A submission arrives as a urlencoded or multipart POST with the fields
// realemail, company_name, url_link and order_details. The first address
// in realemail is validated, the remaining fields are normalized, and a
// plain-text summary is sent to the operator and the customer through a
// mailer.Sender. The client always receives the JSON envelope
//
//	{"success": true|false, "message": "..."}
//
// Wiring it into an app:
//
//	svc := order.NewService(m, cfg,
//	    order.WithCaptureMode(mailCfg.IsCapture()),
//	    order.WithLogger(log),
//	    order.WithMetrics(metrics),
//	)
//	app := orderdesk.New(
//	    orderdesk.WithHandlers(order.NewHandler(svc, order.WithPaths(cfg.Path, "/api/orders"))),
//	)
//
// When the sender forwards to a capture service (MailHog), the endpoint
// reports success even if forwarding failed, matching the form's
// expectations; Config.CaptureStrict turns those failures into
// success=false.
package order
