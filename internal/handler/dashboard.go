package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"orderdesk/internal/service"
	"orderdesk/internal/view"

	"golang.org/x/sync/errgroup"
)

// Dashboard serves the main screen: the login form while logged out,
// otherwise the order dashboard with a freshly fetched list. Health
// probe and list fetch go out in parallel.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.svc.LoggedIn() {
		h.writeLogin(w, "")
		return
	}

	var up bool
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		up = h.svc.GatewayUp(ctx)
		return nil
	})
	g.Go(func() error {
		h.svc.RefreshOrders(ctx)
		return nil
	})
	_ = g.Wait()

	h.writeDashboard(w, up, "")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	if username == "" {
		h.writeLogin(w, "Username is required.")
		return
	}

	if err := h.svc.Login(r.Context(), username); err != nil {
		log.Printf("Login failed for %q: %v", username, err)
		h.writeLogin(w, "Login failed.")
		return
	}

	// Login already fetched the order list.
	up := h.svc.GatewayUp(r.Context())
	h.writeDashboard(w, up, "")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout()
	h.writeLogin(w, "")
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if !h.svc.LoggedIn() {
		h.writeLogin(w, "Please log in first.")
		return
	}

	product := r.FormValue("product")
	if product == "" {
		h.renderDashboardNotice(w, r, "Choose a product first.")
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		h.renderDashboardNotice(w, r, "Quantity must be a positive number.")
		return
	}

	if err := h.svc.PlaceOrder(r.Context(), product, quantity); err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			h.renderDashboardNotice(w, r, "Quantity must be a positive number.")
			return
		}
		log.Printf("Order submission failed: %v", err)
		h.renderDashboardNotice(w, r, "Failed to place order.")
		return
	}

	// PlaceOrder already refreshed the list once; render from cache.
	h.renderDashboardNotice(w, r, "Order placed successfully!")
}

func (h *Handler) renderDashboardNotice(w http.ResponseWriter, r *http.Request, notice string) {
	up := h.svc.GatewayUp(r.Context())
	h.writeDashboard(w, up, notice)
}

// writeDashboard renders the dashboard from the cached order list.
func (h *Handler) writeDashboard(w http.ResponseWriter, up bool, notice string) {
	page := view.DashboardPage(view.DashboardData{
		User:      h.svc.Session().User,
		Products:  h.products,
		Orders:    view.OrdersHTML(h.svc.Orders()),
		GatewayUp: up,
		Notice:    notice,
	})
	writeHTML(w, page)
}

func (h *Handler) writeLogin(w http.ResponseWriter, notice string) {
	writeHTML(w, view.LoginPage(notice))
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, page)
}
