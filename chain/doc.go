// Package chain models the multiplication of a finite FLew-chain: a
// commutative, associative, monotone operation on the ordered set
// {0, 1, …, n-1} where 0 is absorbing and n-1 is the identity.
//
// What:
//
//   - Table wraps a compact cell vector holding only the upper triangle of
//     the interior (n-2)×(n-2) submatrix; boundary rows and columns are never
//     stored because 0·x = 0 and (n-1)·x = x determine them completely.
//   - Eval answers a·b for any pair in the domain, combining the boundary
//     shortcuts with a triangular index lookup.
//   - Associative and Monotone decide the two defining laws over raw cell
//     vectors, so a search can test candidates without freezing them first.
//   - Cayley reconstructs the full n×n multiplication table for renderers.
//
// Why:
//
//   - Algebra research: exhaustive studies of finite residuated chains need a
//     cheap, canonical representation for millions of candidate tables.
//   - Verification: the law checkers double as independent validators for
//     tables produced elsewhere.
//
// Complexity:
//
//   - Eval:        O(1), one triangular offset computation.
//   - Associative: O(n³) evaluations worst case, short-circuits on the first
//     failing triple (typically O(1) for rejected candidates).
//   - Monotone:    O(n²) evaluations.
//   - Cayley:      O(n²) evaluations, O(n²) memory.
//
// Errors (sentinel):
//
//   - ErrBadSize     if a table is constructed with n < 1.
//   - ErrCellCount   if the supplied cell vector length differs from CellCount(n).
//   - ErrCellRange   if a supplied cell value lies outside [0, n-1].
//   - ErrOutOfDomain if Eval receives an operand outside [0, n-1].
package chain
