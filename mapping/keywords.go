package mapping

// Keywords are SQL reserved words the transpiler normalizes to uppercase.
// A keyword keeps its space before a following '(' - identifiers and
// function names do not (SELECT COUNT(x) FROM t WHERE a IN (1, 2)).
var Keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "GROUP": true, "BY": true,
	"ORDER": true, "HAVING": true, "LIMIT": true, "OFFSET": true,
	"AS": true, "AND": true, "OR": true, "NOT": true, "IN": true,
	"IS": true, "NULL": true, "TRUE": true, "FALSE": true,
	"CASE": true, "WHEN": true, "THEN": true, "ELSE": true, "END": true,
	"JOIN": true, "LEFT": true, "RIGHT": true, "FULL": true, "INNER": true,
	"OUTER": true, "CROSS": true, "ON": true, "USING": true,
	"UNION": true, "ALL": true, "DISTINCT": true, "BETWEEN": true,
	"LIKE": true, "EXISTS": true, "WITH": true, "OVER": true,
	"PARTITION": true, "PARTITIONED": true, "CLUSTER": true,
	"CLUSTERED": true, "INTERVAL": true, "DAY": true,
	"CREATE": true, "TABLE": true, "REPLACE": true, "VIEW": true,
	"INSERT": true, "INTO": true, "VALUES": true, "UPDATE": true,
	"SET": true, "DELETE": true, "ASC": true, "DESC": true,
	"OPTIONS": true,
}
