// CLI-приложение магазина: просмотр каталога, карточки товаров,
// оформление заказа и поиск заказа по идентификатору.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vietct/orderflow-client/config"
	"github.com/vietct/orderflow-client/internal/app"
	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/internal/view"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		return 1
	}
	defer cleanup()

	if len(os.Args) < 2 {
		usage()
		return 2
	}

	switch os.Args[1] {
	case "browse":
		err = runBrowse(ctx, a)
	case "products":
		err = runProducts(ctx, a, os.Args[2:])
	case "product":
		err = runProduct(ctx, a, os.Args[2:])
	case "buy":
		err = runBuy(ctx, a, os.Args[2:])
	case "order":
		err = runOrder(ctx, a, os.Args[2:])
	default:
		usage()
		return 2
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shop <command> [flags]

commands:
  browse                     interactive catalog browser
  products [-page N] [-category ID]
  product <id>
  buy <product-id> [-qty N] [-user ID] [-pay METHOD]
  order <id>`)
}

// waitTerminal — дождаться терминального состояния экрана или отмены контекста.
func waitTerminal[Out any](ctx context.Context, states <-chan view.State[Out]) (view.State[Out], error) {
	for {
		select {
		case st := <-states:
			if st.Status != view.StatusPending {
				return st, nil
			}
		case <-ctx.Done():
			return view.State[Out]{}, ctx.Err()
		}
	}
}

func runProducts(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	page := fs.Int("page", 0, "zero-based page index")
	category := fs.String("category", "", "category id filter")
	_ = fs.Parse(args)

	states := make(chan view.State[view.ProductPage], 4)
	v := view.NewCatalogListView(a.Catalog, a.Logger, func(st view.State[view.ProductPage]) { states <- st })
	defer v.Close()

	if *category != "" {
		v.SetCategory(ctx, *category)
		if *page > 0 {
			if st, err := waitTerminal(ctx, states); err != nil || st.Status != view.StatusSuccess {
				return renderFailure(st, err)
			}
			v.LoadPage(ctx, *page)
		}
	} else {
		v.LoadPage(ctx, *page)
	}

	st, err := waitTerminal(ctx, states)
	if err != nil || st.Status != view.StatusSuccess {
		return renderFailure(st, err)
	}

	renderPage(st.Value, v.Controls())
	return nil
}

func runProduct(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: shop product <id>")
	}

	states := make(chan view.State[domain.ProductDetail], 4)
	v := view.NewProductDetailView(a.Catalog, a.Logger, func(st view.State[domain.ProductDetail]) { states <- st })
	defer v.Close()

	v.Load(ctx, args[0])

	st, err := waitTerminal(ctx, states)
	if err != nil {
		return err
	}
	switch st.Status {
	case view.StatusNotFound:
		fmt.Println("Not found.")
		return nil
	case view.StatusSuccess:
		renderDetail(st.Value)
		return nil
	default:
		return renderFailure(st, nil)
	}
}

func runBuy(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: shop buy <product-id> [-qty N] [-user ID] [-pay METHOD]")
	}
	productID := args[0]

	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	qty := fs.String("qty", "1", "quantity")
	user := fs.String("user", "", "user id (empty for guest checkout)")
	pay := fs.String("pay", "", "payment method: CREDIT_CARD|PAYPAL|APPLE_PAY")
	_ = fs.Parse(args[1:])

	// Сначала карточка товара: форма покупки живёт на ней.
	detailStates := make(chan view.State[domain.ProductDetail], 4)
	dv := view.NewProductDetailView(a.Catalog, a.Logger, func(st view.State[domain.ProductDetail]) { detailStates <- st })
	defer dv.Close()

	dv.Load(ctx, productID)
	dst, err := waitTerminal(ctx, detailStates)
	if err != nil {
		return err
	}
	if dst.Status == view.StatusNotFound {
		fmt.Println("Not found.")
		return nil
	}
	if dst.Status != view.StatusSuccess {
		return renderFailure(dst, nil)
	}

	orderStates := make(chan view.State[domain.Order], 4)
	cv := view.NewCheckoutView(a.Orders, dst.Value, a.Logger, func(st view.State[domain.Order]) { orderStates <- st })
	defer cv.Close()

	fmt.Printf("Estimated total: $%.2f\n", cv.EstimatedTotal(*qty))

	if err := cv.Submit(ctx, *qty, *user, *pay); err != nil {
		return err
	}

	st, err := waitTerminal(ctx, orderStates)
	if err != nil {
		return err
	}
	if st.Status != view.StatusSuccess {
		return renderFailure(st, nil)
	}

	fmt.Println("Order confirmed.")
	renderOrder(st.Value)
	return nil
}

func runOrder(ctx context.Context, a *app.App, args []string) error {
	rawID := ""
	if len(args) > 0 {
		rawID = args[0]
	}

	states := make(chan view.State[domain.Order], 4)
	v := view.NewOrderLookupView(a.Orders, a.Logger, func(st view.State[domain.Order]) { states <- st })
	defer v.Close()

	if err := v.Lookup(ctx, rawID); err != nil {
		return err
	}

	st, err := waitTerminal(ctx, states)
	if err != nil {
		return err
	}
	switch st.Status {
	case view.StatusNotFound:
		fmt.Println("Order not found.")
		return nil
	case view.StatusSuccess:
		renderOrder(st.Value)
		return nil
	default:
		return renderFailure(st, nil)
	}
}

// runBrowse — интерактивный просмотр каталога: n/p — страницы,
// c <id> — фильтр по категории, r — повтор, <номер> — карточка, q — выход.
func runBrowse(ctx context.Context, a *app.App) error {
	return browse(ctx, a, os.Stdin)
}

// browse — цикл команд. Состояние ждём только после начатой загрузки:
// команда без запроса (хинт, граница страниц, карточка) сразу возвращает
// приглашение, а не блокируется на пустом канале состояний.
func browse(ctx context.Context, a *app.App, input io.Reader) error {
	states := make(chan view.State[view.ProductPage], 4)
	v := view.NewCatalogListView(a.Catalog, a.Logger, func(st view.State[view.ProductPage]) { states <- st })
	defer v.Close()

	v.LoadPage(ctx, 0)
	pending := true

	scanner := bufio.NewScanner(input)
	for {
		if pending {
			st, err := waitTerminal(ctx, states)
			if err != nil {
				return nil // отмена — штатный выход
			}
			pending = false

			if st.Status == view.StatusSuccess {
				renderPage(st.Value, v.Controls())
			} else {
				fmt.Printf("Error: %s (r to retry)\n", st.Message)
			}
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "q":
			return nil
		case line == "n":
			if v.Next(ctx) {
				pending = true
			} else {
				fmt.Println("Already on the last page.")
			}
		case line == "p":
			if v.Previous(ctx) {
				pending = true
			} else {
				fmt.Println("Already on the first page.")
			}
		case line == "r":
			v.Retry(ctx)
			pending = true
		case strings.HasPrefix(line, "c "):
			v.SetCategory(ctx, strings.TrimSpace(strings.TrimPrefix(line, "c ")))
			pending = true
		case line == "c":
			v.SetCategory(ctx, "")
			pending = true
		default:
			idx, err := strconv.Atoi(line)
			last := v.State()
			if err != nil || last.Status != view.StatusSuccess || idx < 1 || idx > len(last.Value.Content) {
				fmt.Println("Commands: n, p, r, c <category-id>, <item number>, q.")
				continue
			}
			if err := runProduct(ctx, a, []string{last.Value.Content[idx-1].ID}); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}
}

func renderFailure[Out any](st view.State[Out], err error) error {
	if err != nil {
		return err
	}
	if st.Status == view.StatusNotFound {
		return fmt.Errorf("Not found.")
	}
	return fmt.Errorf("%s", st.Message)
}

func renderPage(page view.ProductPage, controls view.PageControls) {
	fmt.Printf("Page %d/%d (%d items total)\n", controls.DisplayIndex, controls.DisplayTotal, page.TotalElements)
	if len(page.Content) == 0 {
		fmt.Println("No products on this page.")
		return
	}
	for i, p := range page.Content {
		fmt.Printf("%3d. %s — $%.2f [%s]\n", i+1, p.Name, p.Price, p.CategoryName)
	}
	nav := make([]string, 0, 2)
	if controls.CanPrevious {
		nav = append(nav, "p: previous")
	}
	if controls.CanNext {
		nav = append(nav, "n: next")
	}
	if len(nav) > 0 {
		fmt.Println(strings.Join(nav, "  "))
	}
}

func renderDetail(p domain.ProductDetail) {
	fmt.Printf("%s — $%.2f\n", p.Name, p.Price)
	fmt.Printf("Category: %s\n", p.Category.Name)
	if p.Description != nil {
		fmt.Println(*p.Description)
	}
	if p.Stock > 0 {
		fmt.Printf("In stock: %d\n", p.Stock)
	} else {
		fmt.Println("Out of stock.")
	}
	fmt.Println("Payment options:")
	for _, m := range domain.PaymentMethods() {
		fmt.Printf("  %s (%s)\n", m, m.Label())
	}
}

func renderOrder(o domain.Order) {
	fmt.Printf("Order %s — %s\n", o.ID, o.Status)
	if o.Guest() {
		fmt.Println("Customer: guest")
	} else {
		fmt.Printf("Customer: %s\n", *o.UserID)
	}
	for _, it := range o.Items {
		fmt.Printf("  %s x%d @ $%.2f\n", it.ProductName, it.Quantity, it.PriceAtOrder)
	}
	fmt.Printf("Total: $%.2f\n", o.TotalAmount)
	fmt.Printf("Created: %s\n", o.CreatedAt)
}
