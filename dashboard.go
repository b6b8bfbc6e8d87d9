package findash

// Dashboard is an immutable snapshot of every collection the dashboard works
// on. The authoritative copy lives in the store; a snapshot is loaded
// wholesale, derived values are computed from it, and every mutation returns
// a new snapshot to be saved back wholesale. Mutations are serialized by the
// caller: one edit produces the next snapshot before another is applied.
type Dashboard struct {
	Transactions []Transaction
	CryptoAssets []Asset
	StockAssets  []Asset
	Trades       []FuturesTrade
	Categories   CategoryTree
	Budgets      []Budget
	Goals        []Goal
	Invoices     []Invoice
	Settings     Settings
}

// AddTransaction returns a new snapshot with the transaction appended. The
// transaction must validate and its category (and sub-category, when set)
// must resolve in the category tree.
func (d Dashboard) AddTransaction(tx Transaction) (Dashboard, error) {
	if err := tx.Validate(); err != nil {
		return d, err
	}
	if !d.Categories.Resolve(tx.Category, tx.SubCategory) {
		if tx.SubCategory != "" {
			return d, validationf("category %q has no sub-category %q", tx.Category, tx.SubCategory)
		}
		return d, validationf("unknown category %q", tx.Category)
	}
	next := d
	next.Transactions = append(append([]Transaction(nil), d.Transactions...), tx)
	return next, nil
}

// UpdateTransaction returns a new snapshot with the transaction of the same
// id replaced.
func (d Dashboard) UpdateTransaction(tx Transaction) (Dashboard, error) {
	if err := tx.Validate(); err != nil {
		return d, err
	}
	if !d.Categories.Resolve(tx.Category, tx.SubCategory) {
		if tx.SubCategory != "" {
			return d, validationf("category %q has no sub-category %q", tx.Category, tx.SubCategory)
		}
		return d, validationf("unknown category %q", tx.Category)
	}
	next := d
	next.Transactions = append([]Transaction(nil), d.Transactions...)
	for i := range next.Transactions {
		if next.Transactions[i].ID == tx.ID {
			next.Transactions[i] = tx
			return next, nil
		}
	}
	return d, &NotFoundError{Kind: "transaction", ID: tx.ID}
}

// DeleteTransaction returns a new snapshot without the transaction.
func (d Dashboard) DeleteTransaction(id string) (Dashboard, error) {
	next := d
	next.Transactions = append([]Transaction(nil), d.Transactions...)
	for i := range next.Transactions {
		if next.Transactions[i].ID == id {
			next.Transactions = append(next.Transactions[:i], next.Transactions[i+1:]...)
			return next, nil
		}
	}
	return d, &NotFoundError{Kind: "transaction", ID: id}
}

// AddCategory returns a new snapshot with the category added to the tree.
func (d Dashboard) AddCategory(id, name string) (Dashboard, error) {
	tree, err := d.Categories.AddCategory(id, name)
	if err != nil {
		return d, err
	}
	next := d
	next.Categories = tree
	return next, nil
}

// RenameCategory returns a new snapshot with the category renamed and the new
// name propagated to every transaction and budget that referenced the old
// one, so name references never dangle after a rename.
func (d Dashboard) RenameCategory(id, name string) (Dashboard, error) {
	old := d.Categories.Category(id)
	if old == nil {
		return d, &NotFoundError{Kind: "category", ID: id}
	}
	tree, err := d.Categories.RenameCategory(id, name)
	if err != nil {
		return d, err
	}
	renamed := tree.Category(id)

	next := d
	next.Categories = tree
	next.Transactions = append([]Transaction(nil), d.Transactions...)
	for i := range next.Transactions {
		if next.Transactions[i].Category == old.Name {
			next.Transactions[i].Category = renamed.Name
		}
	}
	next.Budgets = append([]Budget(nil), d.Budgets...)
	for i := range next.Budgets {
		if next.Budgets[i].Category == old.Name {
			next.Budgets[i].Category = renamed.Name
		}
	}
	return next, nil
}

// DeleteCategory returns a new snapshot without the category and its
// sub-categories. The delete is rejected while any transaction still
// references the category: orphaned references are never left behind, and
// reassignment is out of scope.
func (d Dashboard) DeleteCategory(id string) (Dashboard, error) {
	c := d.Categories.Category(id)
	if c == nil {
		return d, &NotFoundError{Kind: "category", ID: id}
	}
	for _, t := range d.Transactions {
		if t.Category == c.Name {
			return d, validationf("category %q is still used by transaction %q", c.Name, t.Description)
		}
	}
	tree, err := d.Categories.DeleteCategory(id)
	if err != nil {
		return d, err
	}
	next := d
	next.Categories = tree
	return next, nil
}

// AddSubCategory returns a new snapshot with the sub-category added.
func (d Dashboard) AddSubCategory(categoryID, id, name string) (Dashboard, error) {
	tree, err := d.Categories.AddSubCategory(categoryID, id, name)
	if err != nil {
		return d, err
	}
	next := d
	next.Categories = tree
	return next, nil
}

// RenameSubCategory returns a new snapshot with the sub-category renamed and
// the new name propagated to referencing transactions.
func (d Dashboard) RenameSubCategory(categoryID, subID, name string) (Dashboard, error) {
	parent := d.Categories.Category(categoryID)
	if parent == nil {
		return d, &NotFoundError{Kind: "category", ID: categoryID}
	}
	var oldName string
	for _, s := range parent.SubCategories {
		if s.ID == subID {
			oldName = s.Name
		}
	}
	tree, err := d.Categories.RenameSubCategory(categoryID, subID, name)
	if err != nil {
		return d, err
	}
	var newName string
	for _, s := range tree.Category(categoryID).SubCategories {
		if s.ID == subID {
			newName = s.Name
		}
	}

	next := d
	next.Categories = tree
	next.Transactions = append([]Transaction(nil), d.Transactions...)
	for i := range next.Transactions {
		if next.Transactions[i].Category == parent.Name && next.Transactions[i].SubCategory == oldName {
			next.Transactions[i].SubCategory = newName
		}
	}
	return next, nil
}

// DeleteSubCategory returns a new snapshot without the sub-category, rejected
// while any transaction still references it.
func (d Dashboard) DeleteSubCategory(categoryID, subID string) (Dashboard, error) {
	parent := d.Categories.Category(categoryID)
	if parent == nil {
		return d, &NotFoundError{Kind: "category", ID: categoryID}
	}
	var name string
	for _, s := range parent.SubCategories {
		if s.ID == subID {
			name = s.Name
		}
	}
	if name != "" {
		for _, t := range d.Transactions {
			if t.Category == parent.Name && t.SubCategory == name {
				return d, validationf("sub-category %q is still used by transaction %q", name, t.Description)
			}
		}
	}
	tree, err := d.Categories.DeleteSubCategory(categoryID, subID)
	if err != nil {
		return d, err
	}
	next := d
	next.Categories = tree
	return next, nil
}

// OpenTrade returns a new snapshot with the trade appended to the journal.
func (d Dashboard) OpenTrade(t FuturesTrade) (Dashboard, error) {
	if err := t.Validate(); err != nil {
		return d, err
	}
	next := d
	next.Trades = append(append([]FuturesTrade(nil), d.Trades...), t)
	return next, nil
}

// CloseTrade returns a new snapshot with the trade closed at the given exit
// price and its realized PnL recorded.
func (d Dashboard) CloseTrade(id string, exit Money) (Dashboard, error) {
	next := d
	next.Trades = append([]FuturesTrade(nil), d.Trades...)
	for i := range next.Trades {
		if next.Trades[i].ID != id {
			continue
		}
		closed, err := next.Trades[i].Close(exit)
		if err != nil {
			return d, err
		}
		next.Trades[i] = closed
		return next, nil
	}
	return d, &NotFoundError{Kind: "trade", ID: id}
}

// SetBudget returns a new snapshot with the budget added, or replaced when a
// budget with the same id exists.
func (d Dashboard) SetBudget(b Budget) (Dashboard, error) {
	if err := b.Validate(); err != nil {
		return d, err
	}
	next := d
	next.Budgets = append([]Budget(nil), d.Budgets...)
	for i := range next.Budgets {
		if next.Budgets[i].ID == b.ID {
			next.Budgets[i] = b
			return next, nil
		}
	}
	next.Budgets = append(next.Budgets, b)
	return next, nil
}

// AddGoal returns a new snapshot with the goal appended.
func (d Dashboard) AddGoal(g Goal) (Dashboard, error) {
	if err := g.Validate(); err != nil {
		return d, err
	}
	next := d
	next.Goals = append(append([]Goal(nil), d.Goals...), g)
	return next, nil
}

// AddInvoice returns a new snapshot with the invoice appended.
func (d Dashboard) AddInvoice(i Invoice) (Dashboard, error) {
	if err := i.Validate(); err != nil {
		return d, err
	}
	next := d
	next.Invoices = append(append([]Invoice(nil), d.Invoices...), i)
	return next, nil
}
