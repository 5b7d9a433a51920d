/* Copyright (C) 2024 The chromVAR-go authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package chromvar

/* -------------------------------------------------------------------------- */

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import motifs from a JASPAR database
 * -------------------------------------------------------------------------- */

// Import a collection of known motifs from a JASPAR-schema MySQL
// database (tables MATRIX and MATRIX_DATA). Count matrices are
// converted to per-position nucleotide frequencies.
func ImportPWMCollectionFromJaspar(dsn, collection string) (PWMCollection, error) {
  r := PWMCollection{}

  /* open connection */
  db, err := sql.Open("mysql", dsn)
  if err != nil {
    return r, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return r, err
  }

  /* receive list of matrices */
  rows, err := db.Query(
    "SELECT ID, BASE_ID, VERSION, NAME FROM MATRIX WHERE COLLECTION = ? ORDER BY BASE_ID, VERSION", collection)
  if err != nil {
    return r, err
  }
  defer rows.Close()

  ids   := []int{}
  names := []string{}

  for rows.Next() {
    var i_id, i_version int
    var i_baseId, i_name string

    if err := rows.Scan(&i_id, &i_baseId, &i_version, &i_name); err != nil {
      return r, err
    }
    ids   = append(ids,   i_id)
    names = append(names, fmt.Sprintf("%s.%d %s", i_baseId, i_version, i_name))
  }
  if err := rows.Err(); err != nil {
    return r, err
  }

  /* receive matrix data */
  for i, id := range ids {
    pwm, err := importJasparMatrix(db, id, names[i])
    if err != nil {
      return r, err
    }
    r.Append(names[i], pwm)
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

func importJasparMatrix(db *sql.DB, id int, name string) (PWM, error) {
  alphabet := NucleotideAlphabet{}

  rows, err := db.Query(
    "SELECT row, col, val FROM MATRIX_DATA WHERE ID = ? ORDER BY col, row", id)
  if err != nil {
    return PWM{}, err
  }
  defer rows.Close()

  counts := make([][]float64, alphabet.Length())

  for rows.Next() {
    var i_row string
    var i_col int
    var i_val float64

    if err := rows.Scan(&i_row, &i_col, &i_val); err != nil {
      return PWM{}, err
    }
    if len(i_row) != 1 {
      return PWM{}, fmt.Errorf("importJasparMatrix(): matrix `%s' has an invalid row label", name)
    }
    i, err := alphabet.Code(i_row[0])
    if err != nil {
      return PWM{}, err
    }
    // columns are one-based in the JASPAR schema
    for len(counts[i]) < i_col {
      counts[i] = append(counts[i], 0.0)
    }
    counts[i][i_col-1] = i_val
  }
  if err := rows.Err(); err != nil {
    return PWM{}, err
  }
  n := 0
  for i := 0; i < alphabet.Length(); i++ {
    n = iMax(n, len(counts[i]))
  }
  if n == 0 {
    return PWM{}, fmt.Errorf("importJasparMatrix(): matrix `%s' has no data", name)
  }
  values := make([][]float64, alphabet.Length())
  for i := 0; i < alphabet.Length(); i++ {
    values[i] = make([]float64, n)
    copy(values[i], counts[i])
  }
  // convert counts to frequencies
  for j := 0; j < n; j++ {
    sum := 0.0
    for i := 0; i < alphabet.Length(); i++ {
      sum += values[i][j]
    }
    if sum == 0.0 {
      return PWM{}, fmt.Errorf("importJasparMatrix(): matrix `%s' has an empty column", name)
    }
    for i := 0; i < alphabet.Length(); i++ {
      values[i][j] /= sum
    }
  }
  return NewPWM(values)
}
